package stats

import (
	"sort"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

// SetterStats is one leaderboard row for a setter over a set of calls.
type SetterStats struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	TotalCallsBooked      int     `json:"total_calls_booked"`
	TotalShows            int     `json:"total_shows"`
	TotalCloses           int     `json:"total_closes"`
	TotalRevenueGenerated float64 `json:"total_revenue_generated"`
	ShowRate              float64 `json:"show_rate"`
	CloseRate             float64 `json:"close_rate"`
}

// SetterSummaries computes one row per setter, including setters with no
// calls in range, sorted by revenue generated descending. Ties keep the
// input order of setters. A show is any call that actually happened, so
// both Live and Closed count.
func SetterSummaries(setters []models.Setter, calls []models.Call) []SetterStats {
	rows := make([]SetterStats, len(setters))
	buckets := make(map[string]*SetterStats, len(setters))
	for i, st := range setters {
		rows[i] = SetterStats{
			ID:    st.ID,
			Name:  st.Name,
			Email: st.Email,
		}
		buckets[st.ID] = &rows[i]
	}

	fold(calls, buckets, setterKey, nil, func(b *SetterStats, c models.Call) {
		b.TotalCallsBooked++
		switch models.CallResult(c.Result) {
		case models.ResultLive:
			b.TotalShows++
		case models.ResultClosed:
			b.TotalShows++
			b.TotalCloses++
			b.TotalRevenueGenerated += c.Revenue
		}
	})

	for i := range rows {
		if rows[i].TotalCallsBooked > 0 {
			rows[i].ShowRate = float64(rows[i].TotalShows) / float64(rows[i].TotalCallsBooked) * 100
			rows[i].CloseRate = float64(rows[i].TotalCloses) / float64(rows[i].TotalCallsBooked) * 100
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenueGenerated > rows[j].TotalRevenueGenerated
	})

	return rows
}
