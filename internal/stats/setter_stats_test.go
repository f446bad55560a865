package stats

import (
	"testing"

	"github.com/CachoMX/partnership-kpi/internal/models"
)

func TestSetterSummaries(t *testing.T) {
	setters := []models.Setter{{ID: "s1", Name: "Sam"}}

	calls := []models.Call{
		setterCall("s1", "2025-03-01", "Live", 0),
		setterCall("s1", "2025-03-01", "Closed", 3000),
		setterCall("s1", "2025-03-02", "No Show", 0),
		setterCall("s1", "2025-03-02", "Closed", 1000),
	}

	rows := SetterSummaries(setters, calls)
	got := rows[0]

	if got.TotalCallsBooked != 4 {
		t.Errorf("expected total_calls_booked 4, got %d", got.TotalCallsBooked)
	}
	// Shows are calls that happened: Live plus Closed.
	if got.TotalShows != 3 {
		t.Errorf("expected total_shows 3, got %d", got.TotalShows)
	}
	if got.TotalCloses != 2 {
		t.Errorf("expected total_closes 2, got %d", got.TotalCloses)
	}
	if got.TotalRevenueGenerated != 4000 {
		t.Errorf("expected total_revenue_generated 4000, got %v", got.TotalRevenueGenerated)
	}
	if got.ShowRate != 75 {
		t.Errorf("expected show_rate 75, got %v", got.ShowRate)
	}
	if got.CloseRate != 50 {
		t.Errorf("expected close_rate 50, got %v", got.CloseRate)
	}
}

func TestSetterSummariesZeroCalls(t *testing.T) {
	rows := SetterSummaries([]models.Setter{{ID: "s1", Name: "Sam"}}, nil)
	got := rows[0]

	if got.TotalCallsBooked != 0 {
		t.Errorf("expected total_calls_booked 0, got %d", got.TotalCallsBooked)
	}
	if got.ShowRate != 0 || got.CloseRate != 0 {
		t.Errorf("expected zero rates with no calls, got show=%v close=%v", got.ShowRate, got.CloseRate)
	}
	if got.TotalRevenueGenerated != 0 {
		t.Errorf("expected total_revenue_generated 0, got %v", got.TotalRevenueGenerated)
	}
}

func TestSetterSummariesLeaderboardOrder(t *testing.T) {
	setters := []models.Setter{
		{ID: "tie-a", Name: "TieA"},
		{ID: "tie-b", Name: "TieB"},
		{ID: "top", Name: "Top"},
	}

	calls := []models.Call{
		setterCall("tie-a", "2025-03-01", "Closed", 500),
		setterCall("tie-b", "2025-03-01", "Closed", 500),
		setterCall("top", "2025-03-01", "Closed", 800),
	}

	rows := SetterSummaries(setters, calls)

	wantOrder := []string{"top", "tie-a", "tie-b"}
	for i, want := range wantOrder {
		if rows[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, rows[i].ID)
		}
	}
}
