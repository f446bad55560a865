package handlers

import (
	"net/http"
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
	"github.com/CachoMX/partnership-kpi/internal/repository"
	"github.com/CachoMX/partnership-kpi/internal/services"

	"github.com/gin-gonic/gin"
)

type EODHandler struct {
	eodService services.EODService
}

func NewEODHandler(eodService services.EODService) *EODHandler {
	return &EODHandler{eodService: eodService}
}

// GetReports lists end-of-day reports, newest first, optionally filtered by
// user and date range.
func (h *EODHandler) GetReports(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repository.EODFilter{
		UserID:   c.Query("userId"),
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	reports, err := h.eodService.ListReports(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}

type createEODRequest struct {
	Date               string     `json:"date"`
	UserID             string     `json:"user_id"`
	UserName           string     `json:"user_name"`
	UserRole           string     `json:"user_role"`
	CallsMade          int        `json:"calls_made"`
	AppointmentsSet    int        `json:"appointments_set"`
	ShowsExpected      int        `json:"shows_expected"`
	FollowUpsScheduled int        `json:"follow_ups_scheduled"`
	Wins               string     `json:"wins"`
	Challenges         string     `json:"challenges"`
	TomorrowGoals      string     `json:"tomorrow_goals"`
	Notes              string     `json:"notes"`
	Timestamp          *time.Time `json:"timestamp"`
}

func (h *EODHandler) CreateReport(c *gin.Context) {
	var req createEODRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + req.Date})
		return
	}

	report := &models.EODReport{
		Date:               date,
		UserID:             req.UserID,
		UserName:           req.UserName,
		UserRole:           req.UserRole,
		CallsMade:          req.CallsMade,
		AppointmentsSet:    req.AppointmentsSet,
		ShowsExpected:      req.ShowsExpected,
		FollowUpsScheduled: req.FollowUpsScheduled,
		Wins:               req.Wins,
		Challenges:         req.Challenges,
		TomorrowGoals:      req.TomorrowGoals,
		Notes:              req.Notes,
	}
	if req.Timestamp != nil {
		report.Timestamp = *req.Timestamp
	}

	if err := h.eodService.CreateReport(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": report})
}
