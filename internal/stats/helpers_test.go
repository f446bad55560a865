package stats

import (
	"time"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

func call(closerID, bookingDate, result string, revenue, cash float64) models.Call {
	c := models.Call{
		BookingDate:   day(bookingDate),
		Result:        result,
		Revenue:       revenue,
		CashCollected: cash,
	}
	if closerID != "" {
		c.CloserID = &closerID
	}
	return c
}

func setterCall(setterID, bookingDate, result string, revenue float64) models.Call {
	c := models.Call{
		BookingDate: day(bookingDate),
		Result:      result,
		Revenue:     revenue,
	}
	if setterID != "" {
		c.SetterID = &setterID
	}
	return c
}
