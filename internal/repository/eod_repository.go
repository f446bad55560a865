package repository

import (
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"

	"gorm.io/gorm"
)

// EODFilter narrows report queries. Zero fields are ignored.
type EODFilter struct {
	UserID   string
	DateFrom *time.Time
	DateTo   *time.Time
}

type EODRepository interface {
	Create(report *models.EODReport) error
	List(filter EODFilter) ([]models.EODReport, error)
}

type eodRepository struct {
	db *gorm.DB
}

func NewEODRepository(db *gorm.DB) EODRepository {
	return &eodRepository{db: db}
}

func (r *eodRepository) Create(report *models.EODReport) error {
	return r.db.Create(report).Error
}

func (r *eodRepository) List(filter EODFilter) ([]models.EODReport, error) {
	var reports []models.EODReport
	query := r.db.Order("date DESC")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	err := query.Find(&reports).Error
	return reports, err
}
