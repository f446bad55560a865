package stats

import (
	"sort"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

// CloserStats is one leaderboard row for a closer over a set of calls.
type CloserStats struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	CommissionRate     float64 `json:"commission_rate"`
	TotalCalls         int     `json:"total_calls"`
	LiveCalls          int     `json:"live_calls"`
	NoShows            int     `json:"no_shows"`
	ClosedDeals        int     `json:"closed_deals"`
	OffersMade         int     `json:"offers_made"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalCashCollected float64 `json:"total_cash_collected"`
	TotalCommission    float64 `json:"total_commission"`
}

// CloserSummaries computes one row per closer, including closers with no
// calls in range, sorted by cash collected descending. Ties keep the input
// order of closers.
//
// TotalCommission here is the revenue-based aggregate figure
// (total_revenue × rate). Per-call overrides are the domain of
// CallCommission and the payout report, not of this leaderboard.
func CloserSummaries(closers []models.Closer, calls []models.Call) []CloserStats {
	rows := make([]CloserStats, len(closers))
	buckets := make(map[string]*CloserStats, len(closers))
	for i, cl := range closers {
		rows[i] = CloserStats{
			ID:             cl.ID,
			Name:           cl.Name,
			Email:          cl.Email,
			CommissionRate: cl.CommissionRate,
		}
		buckets[cl.ID] = &rows[i]
	}

	fold(calls, buckets, closerKey, nil, func(b *CloserStats, c models.Call) {
		b.TotalCalls++
		switch models.CallResult(c.Result) {
		case models.ResultLive:
			b.LiveCalls++
		case models.ResultNoShow:
			b.NoShows++
		case models.ResultClosed:
			b.ClosedDeals++
			b.TotalRevenue += c.Revenue
			b.TotalCashCollected += c.TotalCash()
		}
		if c.OfferMade {
			b.OffersMade++
		}
	})

	for i := range rows {
		rows[i].TotalCommission = rows[i].TotalRevenue * (rows[i].CommissionRate / 100)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCashCollected > rows[j].TotalCashCollected
	})

	return rows
}
