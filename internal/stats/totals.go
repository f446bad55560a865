package stats

import (
	"github.com/CachoMX/partnership-kpi/internal/models"
)

// Totals are the org-wide header cards on the admin dashboard.
type Totals struct {
	TotalCalls         int     `json:"total_calls"`
	LiveCalls          int     `json:"live_calls"`
	ClosedDeals        int     `json:"closed_deals"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalCashCollected float64 `json:"total_cash_collected"`
	ShowRate           float64 `json:"show_rate"`
	CloseRate          float64 `json:"close_rate"`
}

// OverallTotals sums every call in range regardless of rep assignment.
// Revenue and cash only count on Closed calls, rates are percentages, and an
// empty range yields zeros rather than NaN.
func OverallTotals(calls []models.Call) Totals {
	var t Totals
	for _, c := range calls {
		t.TotalCalls++
		switch models.CallResult(c.Result) {
		case models.ResultLive:
			t.LiveCalls++
		case models.ResultClosed:
			t.ClosedDeals++
			t.TotalRevenue += c.Revenue
			t.TotalCashCollected += c.TotalCash()
		}
	}
	if t.TotalCalls > 0 {
		shows := t.LiveCalls + t.ClosedDeals
		t.ShowRate = float64(shows) / float64(t.TotalCalls) * 100
		t.CloseRate = float64(t.ClosedDeals) / float64(t.TotalCalls) * 100
	}
	return t
}
