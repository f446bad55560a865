package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubCallService struct {
	createdCall  *models.Call
	listedFilter repository.CallFilter
	updatedID    string
	updatedPatch services.AssignmentPatch
	updateErr    error
}

func (s *stubCallService) CreateCall(call *models.Call) error {
	s.createdCall = call
	return nil
}

func (s *stubCallService) GetAllCalls() ([]models.Call, error) {
	return nil, nil
}

func (s *stubCallService) ListCalls(filter repository.CallFilter) ([]models.Call, int64, error) {
	s.listedFilter = filter
	return nil, 0, nil
}

func (s *stubCallService) UpdateAssignment(callID string, p services.AssignmentPatch) error {
	s.updatedID = callID
	s.updatedPatch = p
	return s.updateErr
}

func newCallRouter(svc services.CallService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCallHandler(svc)
	router := gin.New()
	router.POST("/api/calls", h.CreateCall)
	router.GET("/api/sales", h.GetSales)
	router.POST("/api/sales/update", h.UpdateSale)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCallRequiresLeadNameAndBookingDate(t *testing.T) {
	svc := &stubCallService{}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/calls", `{"lead_name": "Lead"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if svc.createdCall != nil {
		t.Error("expected no service call on validation failure")
	}
}

func TestCreateCallRejectsBadBookingDate(t *testing.T) {
	router := newCallRouter(&stubCallService{})

	w := doJSON(t, router, http.MethodPost, "/api/calls", `{"lead_name": "Lead", "booking_date": "03/01/2025"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCallAccepted(t *testing.T) {
	svc := &stubCallService{}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/calls",
		`{"lead_name": "Lead", "booking_date": "2025-03-01", "result": "Closed", "revenue": 1000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if svc.createdCall == nil {
		t.Fatal("expected the call handed to the service")
	}
	if svc.createdCall.LeadName != "Lead" || svc.createdCall.Revenue != 1000 {
		t.Errorf("unexpected call payload: %+v", svc.createdCall)
	}
	if svc.createdCall.BookingDate.Format(dateLayout) != "2025-03-01" {
		t.Errorf("unexpected booking date: %v", svc.createdCall.BookingDate)
	}
}

func TestGetSalesParsesFilters(t *testing.T) {
	svc := &stubCallService{}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodGet,
		"/api/sales?dateFrom=2025-03-01&dateTo=2025-03-31&closerId=c1&limit=25", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	f := svc.listedFilter
	if f.CloserID != "c1" || f.Limit != 25 {
		t.Errorf("unexpected filter: %+v", f)
	}
	if f.DateFrom == nil || f.DateFrom.Format(dateLayout) != "2025-03-01" {
		t.Errorf("unexpected dateFrom: %v", f.DateFrom)
	}
	// dateTo covers the whole closing day.
	if f.DateTo == nil || f.DateTo.Format("2006-01-02 15:04:05") != "2025-03-31 23:59:59" {
		t.Errorf("unexpected dateTo: %v", f.DateTo)
	}
}

func TestGetSalesRejectsBadDate(t *testing.T) {
	router := newCallRouter(&stubCallService{})

	w := doJSON(t, router, http.MethodGet, "/api/sales?dateFrom=yesterday", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateSaleRequiresCallID(t *testing.T) {
	svc := &stubCallService{}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/sales/update", `{"closerId": "c1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if svc.updatedID != "" {
		t.Error("expected no service call without callId")
	}
}

func TestUpdateSaleDistinguishesNullFromAbsent(t *testing.T) {
	svc := &stubCallService{}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/sales/update",
		`{"callId": "call-1", "closerId": null, "sales_platform": "Stripe"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	p := svc.updatedPatch
	if !p.CloserID.Present || p.CloserID.Valid {
		t.Errorf("expected closerId present-and-null, got %+v", p.CloserID)
	}
	if !p.SalesPlatform.Present || !p.SalesPlatform.Valid || p.SalesPlatform.Value != "Stripe" {
		t.Errorf("unexpected sales_platform field: %+v", p.SalesPlatform)
	}
	if p.PaymentMethod.Present {
		t.Errorf("expected absent payment_method to stay not-present, got %+v", p.PaymentMethod)
	}
}

func TestUpdateSaleUnknownCallIs404(t *testing.T) {
	svc := &stubCallService{updateErr: gorm.ErrRecordNotFound}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/sales/update",
		`{"callId": "missing", "closerId": "c1"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateSaleEmptyPatchIs400(t *testing.T) {
	svc := &stubCallService{updateErr: services.ErrNoUpdateFields}
	router := newCallRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/sales/update", `{"callId": "call-1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
