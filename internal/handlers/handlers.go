package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseDateRange reads the optional dateFrom/dateTo query parameters. Both
// bounds are inclusive, so dateTo is pushed to the end of its day.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var dateFrom, dateTo *time.Time

	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid dateFrom: %s", v)
		}
		dateFrom = &t
	}

	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid dateTo: %s", v)
		}
		end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		dateTo = &end
	}

	return dateFrom, dateTo, nil
}
