package repository

import (
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"

	"gorm.io/gorm"
)

// CallFilter narrows call queries. Zero fields are ignored. Limit only
// applies to List; Count always ignores it so callers can report the full
// match count alongside a capped page.
type CallFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	CloserID string
	SetterID string
	Result   string
	Limit    int
}

type CallRepository interface {
	Create(call *models.Call) error
	GetByID(id string) (*models.Call, error)
	GetAll() ([]models.Call, error)
	List(filter CallFilter) ([]models.Call, error)
	Count(filter CallFilter) (int64, error)
	UpdateFields(id string, fields map[string]interface{}) error
	DeleteByCloserID(closerID string) error
	DeleteBySetterID(setterID string) error
}

type callRepository struct {
	db *gorm.DB
}

func NewCallRepository(db *gorm.DB) CallRepository {
	return &callRepository{db: db}
}

func (r *callRepository) Create(call *models.Call) error {
	return r.db.Create(call).Error
}

func (r *callRepository) GetByID(id string) (*models.Call, error) {
	var call models.Call
	err := r.db.First(&call, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *callRepository) GetAll() ([]models.Call, error) {
	var calls []models.Call
	err := r.db.Order("booking_date DESC").Find(&calls).Error
	return calls, err
}

func (r *callRepository) List(filter CallFilter) ([]models.Call, error) {
	var calls []models.Call
	query := r.applyFilter(r.db, filter).Order("booking_date DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	err := query.Find(&calls).Error
	return calls, err
}

func (r *callRepository) Count(filter CallFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.Model(&models.Call{}), filter).Count(&count).Error
	return count, err
}

func (r *callRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Call{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *callRepository) DeleteByCloserID(closerID string) error {
	return r.db.Where("closer_id = ?", closerID).Delete(&models.Call{}).Error
}

func (r *callRepository) DeleteBySetterID(setterID string) error {
	return r.db.Where("setter_id = ?", setterID).Delete(&models.Call{}).Error
}

func (r *callRepository) applyFilter(query *gorm.DB, filter CallFilter) *gorm.DB {
	if filter.DateFrom != nil {
		query = query.Where("booking_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("booking_date <= ?", *filter.DateTo)
	}
	if filter.CloserID != "" {
		query = query.Where("closer_id = ?", filter.CloserID)
	}
	if filter.SetterID != "" {
		query = query.Where("setter_id = ?", filter.SetterID)
	}
	if filter.Result != "" {
		query = query.Where("result = ?", filter.Result)
	}
	return query
}
