package repository

import (
	"errors"

	"github.com/CachoMX/partnership-kpi/internal/models"

	"gorm.io/gorm"
)

type CloserRepository interface {
	Create(closer *models.Closer) error
	GetByID(id string) (*models.Closer, error)
	// GetByName matches the exact name; a miss is (nil, nil), not an error,
	// since callers create the closer on miss.
	GetByName(name string) (*models.Closer, error)
	GetByEmail(email string) (*models.Closer, error)
	GetAll() ([]models.Closer, error)
	Update(closer *models.Closer) error
	DeleteByEmail(email string) error
}

type closerRepository struct {
	db *gorm.DB
}

func NewCloserRepository(db *gorm.DB) CloserRepository {
	return &closerRepository{db: db}
}

func (r *closerRepository) Create(closer *models.Closer) error {
	return r.db.Create(closer).Error
}

func (r *closerRepository) GetByID(id string) (*models.Closer, error) {
	var closer models.Closer
	err := r.db.First(&closer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &closer, nil
}

func (r *closerRepository) GetByName(name string) (*models.Closer, error) {
	var closer models.Closer
	err := r.db.Where("name = ?", name).First(&closer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &closer, nil
}

func (r *closerRepository) GetByEmail(email string) (*models.Closer, error) {
	var closer models.Closer
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&closer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &closer, nil
}

func (r *closerRepository) GetAll() ([]models.Closer, error) {
	var closers []models.Closer
	err := r.db.Order("created_at ASC").Find(&closers).Error
	return closers, err
}

func (r *closerRepository) Update(closer *models.Closer) error {
	return r.db.Save(closer).Error
}

func (r *closerRepository) DeleteByEmail(email string) error {
	return r.db.Where("LOWER(email) = LOWER(?)", email).Delete(&models.Closer{}).Error
}
