package repository

import (
	"errors"

	"github.com/CachoMX/partnership-kpi/internal/models"

	"gorm.io/gorm"
)

type SetterRepository interface {
	Create(setter *models.Setter) error
	GetByID(id string) (*models.Setter, error)
	// GetByName matches the exact name; a miss is (nil, nil), not an error.
	GetByName(name string) (*models.Setter, error)
	GetByEmail(email string) (*models.Setter, error)
	GetAll() ([]models.Setter, error)
	Update(setter *models.Setter) error
	DeleteByEmail(email string) error
}

type setterRepository struct {
	db *gorm.DB
}

func NewSetterRepository(db *gorm.DB) SetterRepository {
	return &setterRepository{db: db}
}

func (r *setterRepository) Create(setter *models.Setter) error {
	return r.db.Create(setter).Error
}

func (r *setterRepository) GetByID(id string) (*models.Setter, error) {
	var setter models.Setter
	err := r.db.First(&setter, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &setter, nil
}

func (r *setterRepository) GetByName(name string) (*models.Setter, error) {
	var setter models.Setter
	err := r.db.Where("name = ?", name).First(&setter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setter, nil
}

func (r *setterRepository) GetByEmail(email string) (*models.Setter, error) {
	var setter models.Setter
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&setter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setter, nil
}

func (r *setterRepository) GetAll() ([]models.Setter, error) {
	var setters []models.Setter
	err := r.db.Order("created_at ASC").Find(&setters).Error
	return setters, err
}

func (r *setterRepository) Update(setter *models.Setter) error {
	return r.db.Save(setter).Error
}

func (r *setterRepository) DeleteByEmail(email string) error {
	return r.db.Where("LOWER(email) = LOWER(?)", email).Delete(&models.Setter{}).Error
}
