// Package stats is the aggregation engine behind the dashboards. Every
// function here is a pure computation over call and rep lists already loaded
// from the database; nothing in this package performs I/O or holds state, so
// each request re-aggregates from scratch.
package stats

import (
	"github.com/CachoMX/partnership-kpi/internal/models"
)

const dateLayout = "2006-01-02"

// fold drives every aggregation variant in this package. key picks the
// bucket for a call (rep id for leaderboards, booking date for time series)
// or reports that the call has none. create builds a bucket the first time a
// key is seen; pass nil to only fill buckets seeded into the map beforehand,
// which is how per-rep summaries keep zero-call reps in the output.
func fold[B any](calls []models.Call, buckets map[string]*B, key func(models.Call) (string, bool), create func(string) *B, add func(*B, models.Call)) {
	for _, c := range calls {
		k, ok := key(c)
		if !ok {
			continue
		}
		b, ok := buckets[k]
		if !ok {
			if create == nil {
				continue
			}
			b = create(k)
			buckets[k] = b
		}
		add(b, c)
	}
}

func closerKey(c models.Call) (string, bool) {
	if c.CloserID == nil {
		return "", false
	}
	return *c.CloserID, true
}

func setterKey(c models.Call) (string, bool) {
	if c.SetterID == nil {
		return "", false
	}
	return *c.SetterID, true
}

func dayKey(c models.Call) (string, bool) {
	return c.BookingDate.Format(dateLayout), true
}
