package stats

import (
	"sort"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

// Payout is the commission owed to one closer over a set of closed calls,
// with per-platform and per-payment-method commission breakdowns.
type Payout struct {
	CloserID           string             `json:"closer_id"`
	CloserName         string             `json:"closer_name"`
	DefaultRate        float64            `json:"default_rate"`
	SalesCount         int                `json:"sales_count"`
	TotalCashCollected float64            `json:"total_cash_collected"`
	TotalCommission    float64            `json:"total_commission"`
	PlatformBreakdown  map[string]float64 `json:"platform_breakdown"`
	PaymentBreakdown   map[string]float64 `json:"payment_breakdown"`
}

// Payouts aggregates per-call commissions (CallCommission, override-aware)
// into one row per closer, sorted by total commission descending. Callers
// pass calls already filtered to Closed results; calls without a closer earn
// nobody anything and are skipped.
func Payouts(calls []models.Call, closers []models.Closer) []Payout {
	rates := CloserRates(closers)

	buckets := make(map[string]*Payout)
	fold(calls, buckets, closerKey, func(id string) *Payout {
		return &Payout{
			CloserID:          id,
			DefaultRate:       rates[id],
			PlatformBreakdown: make(map[string]float64),
			PaymentBreakdown:  make(map[string]float64),
		}
	}, func(b *Payout, c models.Call) {
		if b.CloserName == "" {
			b.CloserName = c.CloserName
		}

		commission := CallCommission(c, rates)
		b.SalesCount++
		b.TotalCashCollected += c.TotalCash()
		b.TotalCommission += commission

		if c.SalesPlatform != "" {
			b.PlatformBreakdown[c.SalesPlatform] += commission
		}
		if c.PaymentMethod != "" {
			b.PaymentBreakdown[c.PaymentMethod] += commission
		}
	})

	payouts := make([]Payout, 0, len(buckets))
	for _, b := range buckets {
		payouts = append(payouts, *b)
	}
	sort.SliceStable(payouts, func(i, j int) bool {
		return payouts[i].TotalCommission > payouts[j].TotalCommission
	})

	return payouts
}

// TotalCommissions sums the payout column, the figure shown on the payouts
// header card.
func TotalCommissions(payouts []Payout) float64 {
	total := 0.0
	for _, p := range payouts {
		total += p.TotalCommission
	}
	return total
}
