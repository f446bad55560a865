package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/patch"
	"github.com/CachoMX/partnership-kpi/internal/repository"
)

// ErrNoUpdateFields rejects an assignment update that carries nothing.
var ErrNoUpdateFields = errors.New("no fields to update")

// AssignmentPatch is the partial-update payload for a call. Every field is
// three-state: absent leaves the column alone, an explicit null clears it, a
// value sets it. Closer and setter are always written as an id+name pair so
// the denormalized name snapshot stays in step with the reference.
type AssignmentPatch struct {
	CloserID               patch.Field[string]  `json:"closerId"`
	CloserName             patch.Field[string]  `json:"closerName"`
	SetterID               patch.Field[string]  `json:"setterId"`
	SetterName             patch.Field[string]  `json:"setterName"`
	SalesPlatform          patch.Field[string]  `json:"sales_platform"`
	PaymentMethod          patch.Field[string]  `json:"payment_method"`
	CommissionOverride     patch.Field[float64] `json:"commission_override"`
	CommissionRateOverride patch.Field[float64] `json:"commission_rate_override"`
}

type CallService interface {
	// CreateCall persists a submitted call, resolving closer/setter identity
	// first. A missing closer_id with a closer_name looks the closer up by
	// exact name and creates one at the default commission rate on a miss.
	// Setters resolve the same way except a missing name or the literal
	// "none" (any case) leaves the call setter-less. Any provisioning
	// failure aborts the whole submission.
	CreateCall(call *models.Call) error
	GetAllCalls() ([]models.Call, error)
	// ListCalls returns the filtered page plus the total match count with
	// the limit ignored.
	ListCalls(filter repository.CallFilter) ([]models.Call, int64, error)
	UpdateAssignment(callID string, p AssignmentPatch) error
}

type callService struct {
	callRepo   repository.CallRepository
	closerRepo repository.CloserRepository
	setterRepo repository.SetterRepository
}

func NewCallService(callRepo repository.CallRepository, closerRepo repository.CloserRepository, setterRepo repository.SetterRepository) CallService {
	return &callService{callRepo: callRepo, closerRepo: closerRepo, setterRepo: setterRepo}
}

func (s *callService) CreateCall(call *models.Call) error {
	if call.CloserID == nil && call.CloserName != "" {
		closer, err := s.resolveCloser(call.CloserName)
		if err != nil {
			return err
		}
		call.CloserID = &closer.ID
	}

	if call.SetterID == nil && call.SetterName != "" && strings.ToLower(call.SetterName) != "none" {
		setter, err := s.resolveSetter(call.SetterName)
		if err != nil {
			return err
		}
		call.SetterID = &setter.ID
	}

	return s.callRepo.Create(call)
}

// resolveCloser finds a closer by exact name or creates one. The
// lookup-then-insert pair is not atomic; two simultaneous submissions of the
// same brand-new name can race and leave duplicate rows. Ids stay stable
// either way, so this is tolerated rather than locked away.
func (s *callService) resolveCloser(name string) (*models.Closer, error) {
	closer, err := s.closerRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up closer: %w", err)
	}
	if closer != nil {
		return closer, nil
	}

	closer = &models.Closer{Name: name, CommissionRate: models.DefaultCommissionRate}
	if err := s.closerRepo.Create(closer); err != nil {
		return nil, fmt.Errorf("failed to create closer: %w", err)
	}
	return closer, nil
}

func (s *callService) resolveSetter(name string) (*models.Setter, error) {
	setter, err := s.setterRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up setter: %w", err)
	}
	if setter != nil {
		return setter, nil
	}

	setter = &models.Setter{Name: name}
	if err := s.setterRepo.Create(setter); err != nil {
		return nil, fmt.Errorf("failed to create setter: %w", err)
	}
	return setter, nil
}

func (s *callService) GetAllCalls() ([]models.Call, error) {
	return s.callRepo.GetAll()
}

func (s *callService) ListCalls(filter repository.CallFilter) ([]models.Call, int64, error) {
	totalCount, err := s.callRepo.Count(filter)
	if err != nil {
		return nil, 0, err
	}

	calls, err := s.callRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	return calls, totalCount, nil
}

func (s *callService) UpdateAssignment(callID string, p AssignmentPatch) error {
	fields := make(map[string]interface{})

	if p.CloserID.Present {
		fields["closer_id"] = nullable(p.CloserID)
		// Name snapshot is refreshed together with the id; a cleared closer
		// keeps an empty display name.
		fields["closer_name"] = p.CloserName.Value
	}
	if p.SetterID.Present {
		fields["setter_id"] = nullable(p.SetterID)
		fields["setter_name"] = nullable(p.SetterName)
	}
	if p.SalesPlatform.Present {
		fields["sales_platform"] = nullable(p.SalesPlatform)
	}
	if p.PaymentMethod.Present {
		fields["payment_method"] = nullable(p.PaymentMethod)
	}
	if p.CommissionOverride.Present {
		fields["commission_override"] = nullable(p.CommissionOverride)
	}
	if p.CommissionRateOverride.Present {
		fields["commission_rate_override"] = nullable(p.CommissionRateOverride)
	}

	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	return s.callRepo.UpdateFields(callID, fields)
}

func nullable[T any](f patch.Field[T]) interface{} {
	if !f.Valid {
		return nil
	}
	return f.Value
}
