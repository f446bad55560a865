package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CallHandler struct {
	callService services.CallService
}

func NewCallHandler(callService services.CallService) *CallHandler {
	return &CallHandler{callService: callService}
}

// GetCalls returns every call, newest booking first.
func (h *CallHandler) GetCalls(c *gin.Context) {
	calls, err := h.callService.GetAllCalls()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": calls})
}

type createCallRequest struct {
	Timestamp              *time.Time `json:"timestamp"`
	BookingDate            string     `json:"booking_date" binding:"required"`
	LeadName               string     `json:"lead_name" binding:"required"`
	LeadEmail              string     `json:"lead_email"`
	LeadPhone              string     `json:"lead_phone"`
	OfferMade              bool       `json:"offer_made"`
	Result                 string     `json:"result"`
	CloserID               *string    `json:"closer_id"`
	CloserName             string     `json:"closer_name"`
	SetterID               *string    `json:"setter_id"`
	SetterName             string     `json:"setter_name"`
	Revenue                float64    `json:"revenue"`
	CashCollected          float64    `json:"cash_collected"`
	CashCollected2         float64    `json:"cash_collected_2"`
	CommissionOverride     *float64   `json:"commission_override"`
	CommissionRateOverride *float64   `json:"commission_rate_override"`
	LeadSource             string     `json:"lead_source"`
	Medium                 string     `json:"medium"`
	Campaign               string     `json:"campaign"`
	CallRecordingLink      string     `json:"call_recording_link"`
	SalesPlatform          string     `json:"sales_platform"`
	PaymentMethod          string     `json:"payment_method"`
	Notes                  string     `json:"notes"`
}

// CreateCall logs a submitted call, auto-provisioning the named closer or
// setter when they have not been seen before.
func (h *CallHandler) CreateCall(c *gin.Context) {
	var req createCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	bookingDate, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_date: " + req.BookingDate})
		return
	}

	call := &models.Call{
		Timestamp:              req.Timestamp,
		BookingDate:            bookingDate,
		LeadName:               req.LeadName,
		LeadEmail:              req.LeadEmail,
		LeadPhone:              req.LeadPhone,
		OfferMade:              req.OfferMade,
		Result:                 req.Result,
		CloserID:               req.CloserID,
		CloserName:             req.CloserName,
		SetterID:               req.SetterID,
		SetterName:             req.SetterName,
		Revenue:                req.Revenue,
		CashCollected:          req.CashCollected,
		CashCollected2:         req.CashCollected2,
		CommissionOverride:     req.CommissionOverride,
		CommissionRateOverride: req.CommissionRateOverride,
		LeadSource:             req.LeadSource,
		Medium:                 req.Medium,
		Campaign:               req.Campaign,
		CallRecordingLink:      req.CallRecordingLink,
		SalesPlatform:          req.SalesPlatform,
		PaymentMethod:          req.PaymentMethod,
		Notes:                  req.Notes,
	}

	if err := h.callService.CreateCall(call); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": call})
}

// GetSales returns calls matching the query filters plus the total match
// count with the limit ignored.
func (h *CallHandler) GetSales(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repository.CallFilter{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		CloserID: c.Query("closerId"),
		SetterID: c.Query("setterId"),
		Result:   c.Query("result"),
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: " + v})
			return
		}
		filter.Limit = limit
	}

	calls, totalCount, err := h.callService.ListCalls(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": calls, "totalCount": totalCount})
}

type updateCallRequest struct {
	CallID string `json:"callId"`
	services.AssignmentPatch
}

// UpdateSale reassigns closer/setter credit on an existing call or adjusts
// its platform, payment method, or commission overrides. Only fields present
// in the payload are touched; an explicit null clears.
func (h *CallHandler) UpdateSale(c *gin.Context) {
	var req updateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.CallID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing callId"})
		return
	}

	if err := h.callService.UpdateAssignment(req.CallID, req.AssignmentPatch); err != nil {
		switch {
		case errors.Is(err, services.ErrNoUpdateFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "call not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
