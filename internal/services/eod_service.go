package services

import (
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
)

type EODService interface {
	CreateReport(report *models.EODReport) error
	ListReports(filter repository.EODFilter) ([]models.EODReport, error)
}

type eodService struct {
	eodRepo repository.EODRepository
}

func NewEODService(eodRepo repository.EODRepository) EODService {
	return &eodService{eodRepo: eodRepo}
}

func (s *eodService) CreateReport(report *models.EODReport) error {
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now()
	}
	return s.eodRepo.Create(report)
}

func (s *eodService) ListReports(filter repository.EODFilter) ([]models.EODReport, error) {
	return s.eodRepo.List(filter)
}
