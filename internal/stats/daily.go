package stats

import (
	"sort"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

// CloserDayStats is one day of activity for a single closer.
type CloserDayStats struct {
	Date          string  `json:"date"`
	Calls         int     `json:"calls"`
	LiveCalls     int     `json:"live_calls"`
	ClosedDeals   int     `json:"closed_deals"`
	Revenue       float64 `json:"revenue"`
	CashCollected float64 `json:"cash_collected"`
	Commission    float64 `json:"commission"`
}

// CloserBestDay is the highest-revenue day in a closer's series.
type CloserBestDay struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	ClosedDeals int     `json:"closed_deals"`
}

// CloserDaily buckets one closer's calls by booking date, ascending, and
// picks the best day by revenue. commissionRate is the closer's default
// percentage; daily commission is revenue-based like the leaderboard figure.
// With no calls in range the series is empty and the best day is the
// zero-value sentinel.
//
// The best-day scan uses strict greater-than over the ascending series, so
// on a revenue tie the earlier date wins.
func CloserDaily(calls []models.Call, commissionRate float64) ([]CloserDayStats, CloserBestDay) {
	buckets := make(map[string]*CloserDayStats)
	fold(calls, buckets, dayKey, func(date string) *CloserDayStats {
		return &CloserDayStats{Date: date}
	}, func(b *CloserDayStats, c models.Call) {
		b.Calls++
		switch models.CallResult(c.Result) {
		case models.ResultLive:
			b.LiveCalls++
		case models.ResultClosed:
			b.ClosedDeals++
			b.Revenue += c.Revenue
			b.CashCollected += c.TotalCash()
			b.Commission += c.Revenue * (commissionRate / 100)
		}
	})

	days := make([]CloserDayStats, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	var best CloserBestDay
	for i, d := range days {
		if i == 0 || d.Revenue > best.Revenue {
			best = CloserBestDay{Date: d.Date, Revenue: d.Revenue, ClosedDeals: d.ClosedDeals}
		}
	}

	return days, best
}

// SetterDayStats is one day of activity for a single setter.
type SetterDayStats struct {
	Date             string  `json:"date"`
	CallsBooked      int     `json:"calls_booked"`
	Shows            int     `json:"shows"`
	Closes           int     `json:"closes"`
	RevenueGenerated float64 `json:"revenue_generated"`
}

// SetterBestDay is the highest-revenue day in a setter's series.
type SetterBestDay struct {
	Date             string  `json:"date"`
	RevenueGenerated float64 `json:"revenue_generated"`
	Closes           int     `json:"closes"`
}

// SetterDaily buckets one setter's calls by booking date, ascending, with
// the same empty-series and tie-breaking behavior as CloserDaily.
func SetterDaily(calls []models.Call) ([]SetterDayStats, SetterBestDay) {
	buckets := make(map[string]*SetterDayStats)
	fold(calls, buckets, dayKey, func(date string) *SetterDayStats {
		return &SetterDayStats{Date: date}
	}, func(b *SetterDayStats, c models.Call) {
		b.CallsBooked++
		switch models.CallResult(c.Result) {
		case models.ResultLive:
			b.Shows++
		case models.ResultClosed:
			b.Shows++
			b.Closes++
			b.RevenueGenerated += c.Revenue
		}
	})

	days := make([]SetterDayStats, 0, len(buckets))
	for _, b := range buckets {
		days = append(days, *b)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	var best SetterBestDay
	for i, d := range days {
		if i == 0 || d.RevenueGenerated > best.RevenueGenerated {
			best = SetterBestDay{Date: d.Date, RevenueGenerated: d.RevenueGenerated, Closes: d.Closes}
		}
	}

	return days, best
}
