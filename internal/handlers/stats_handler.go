package handlers

import (
	"net/http"

	"github.com/CachoMX/partnership-kpi/internal/services"
	"github.com/CachoMX/partnership-kpi/internal/stats"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetClosers(c *gin.Context) {
	closers, err := h.statsService.ListClosers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": closers})
}

func (h *StatsHandler) GetSetters(c *gin.Context) {
	setters, err := h.statsService.ListSetters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": setters})
}

// GetCloserStats returns the closer leaderboard over the optional date range.
func (h *StatsHandler) GetCloserStats(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.statsService.CloserStats(dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GetSetterStats returns the setter leaderboard over the optional date range.
func (h *StatsHandler) GetSetterStats(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.statsService.SetterStats(dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GetCloserDailyStats returns one closer's day-by-day series plus their best
// day. closerId is required.
func (h *StatsHandler) GetCloserDailyStats(c *gin.Context) {
	closerID := c.Query("closerId")
	if closerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "closerId is required"})
		return
	}

	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, best, err := h.statsService.CloserDailyStats(closerID, dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dailyStats": days, "bestDay": best})
}

// GetSetterDailyStats returns one setter's day-by-day series plus their best
// day. setterId is required.
func (h *StatsHandler) GetSetterDailyStats(c *gin.Context) {
	setterID := c.Query("setterId")
	if setterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "setterId is required"})
		return
	}

	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, best, err := h.statsService.SetterDailyStats(setterID, dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dailyStats": days, "bestDay": best})
}

// GetPayouts returns the override-aware commission owed per closer over
// closed deals in range.
func (h *StatsHandler) GetPayouts(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payouts, err := h.statsService.Payouts(dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payouts, "totalCommissions": stats.TotalCommissions(payouts)})
}

// GetSummary returns org-wide totals for the admin dashboard cards.
func (h *StatsHandler) GetSummary(c *gin.Context) {
	dateFrom, dateTo, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.statsService.Summary(dateFrom, dateTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": totals})
}
