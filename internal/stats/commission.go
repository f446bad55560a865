package stats

import (
	"github.com/CachoMX/partnership-kpi/internal/models"
)

// CallCommission resolves the dollar commission owed on a single call. rates
// maps closer id to that closer's default commission percentage (see
// CloserRates).
//
// Resolution order: an absolute override set by an admin wins outright; a
// call with no closer earns nothing; otherwise the per-call rate override,
// then the closer's default rate, then zero. The commission is taken from
// cash actually collected across both installment fields.
//
// This deliberately differs from the aggregate commission on CloserStats,
// which is revenue-based and ignores per-call overrides. The two figures
// serve different reports and are not expected to reconcile.
//
// Inputs are not validated; negative cash or rates flow through the
// arithmetic unchanged.
func CallCommission(call models.Call, rates map[string]float64) float64 {
	if call.CommissionOverride != nil {
		return *call.CommissionOverride
	}

	if call.CloserID == nil {
		return 0
	}

	rate := rates[*call.CloserID]
	if call.CommissionRateOverride != nil {
		rate = *call.CommissionRateOverride
	}

	return call.TotalCash() * (rate / 100)
}

// CloserRates indexes closers by id for commission resolution.
func CloserRates(closers []models.Closer) map[string]float64 {
	rates := make(map[string]float64, len(closers))
	for _, c := range closers {
		rates[c.ID] = c.CommissionRate
	}
	return rates
}
