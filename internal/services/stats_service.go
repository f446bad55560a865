package services

import (
	"errors"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/stats"

	"gorm.io/gorm"
)

// StatsService fetches the rows a dashboard needs and hands them to the
// stats package. Nothing here is cached; every request re-reads and
// re-aggregates.
type StatsService interface {
	ListClosers() ([]models.Closer, error)
	ListSetters() ([]models.Setter, error)
	CloserStats(dateFrom, dateTo *time.Time) ([]stats.CloserStats, error)
	SetterStats(dateFrom, dateTo *time.Time) ([]stats.SetterStats, error)
	CloserDailyStats(closerID string, dateFrom, dateTo *time.Time) ([]stats.CloserDayStats, stats.CloserBestDay, error)
	SetterDailyStats(setterID string, dateFrom, dateTo *time.Time) ([]stats.SetterDayStats, stats.SetterBestDay, error)
	Payouts(dateFrom, dateTo *time.Time) ([]stats.Payout, error)
	Summary(dateFrom, dateTo *time.Time) (stats.Totals, error)
}

type statsService struct {
	callRepo   repository.CallRepository
	closerRepo repository.CloserRepository
	setterRepo repository.SetterRepository
}

func NewStatsService(callRepo repository.CallRepository, closerRepo repository.CloserRepository, setterRepo repository.SetterRepository) StatsService {
	return &statsService{callRepo: callRepo, closerRepo: closerRepo, setterRepo: setterRepo}
}

func (s *statsService) ListClosers() ([]models.Closer, error) {
	return s.closerRepo.GetAll()
}

func (s *statsService) ListSetters() ([]models.Setter, error) {
	return s.setterRepo.GetAll()
}

func (s *statsService) CloserStats(dateFrom, dateTo *time.Time) ([]stats.CloserStats, error) {
	closers, err := s.closerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	calls, err := s.callRepo.List(repository.CallFilter{DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return nil, err
	}

	return stats.CloserSummaries(closers, calls), nil
}

func (s *statsService) SetterStats(dateFrom, dateTo *time.Time) ([]stats.SetterStats, error) {
	setters, err := s.setterRepo.GetAll()
	if err != nil {
		return nil, err
	}

	calls, err := s.callRepo.List(repository.CallFilter{DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return nil, err
	}

	return stats.SetterSummaries(setters, calls), nil
}

func (s *statsService) CloserDailyStats(closerID string, dateFrom, dateTo *time.Time) ([]stats.CloserDayStats, stats.CloserBestDay, error) {
	rate := models.DefaultCommissionRate
	closer, err := s.closerRepo.GetByID(closerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, stats.CloserBestDay{}, err
	}
	if closer != nil {
		rate = closer.CommissionRate
	}

	calls, err := s.callRepo.List(repository.CallFilter{CloserID: closerID, DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return nil, stats.CloserBestDay{}, err
	}

	days, best := stats.CloserDaily(calls, rate)
	return days, best, nil
}

func (s *statsService) SetterDailyStats(setterID string, dateFrom, dateTo *time.Time) ([]stats.SetterDayStats, stats.SetterBestDay, error) {
	calls, err := s.callRepo.List(repository.CallFilter{SetterID: setterID, DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return nil, stats.SetterBestDay{}, err
	}

	days, best := stats.SetterDaily(calls)
	return days, best, nil
}

func (s *statsService) Payouts(dateFrom, dateTo *time.Time) ([]stats.Payout, error) {
	closers, err := s.closerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	// Payouts only ever consider closed deals.
	calls, err := s.callRepo.List(repository.CallFilter{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Result:   string(models.ResultClosed),
	})
	if err != nil {
		return nil, err
	}

	return stats.Payouts(calls, closers), nil
}

func (s *statsService) Summary(dateFrom, dateTo *time.Time) (stats.Totals, error) {
	calls, err := s.callRepo.List(repository.CallFilter{DateFrom: dateFrom, DateTo: dateTo})
	if err != nil {
		return stats.Totals{}, err
	}

	return stats.OverallTotals(calls), nil
}
