package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EODReport is a rep's once-daily self report. Append-only, never aggregated.
type EODReport struct {
	ID                 string    `json:"id" gorm:"type:uuid;primaryKey"`
	Date               time.Time `json:"date" gorm:"not null;index"`
	UserID             string    `json:"user_id" gorm:"type:uuid;not null;index"`
	UserName           string    `json:"user_name"`
	UserRole           string    `json:"user_role"`
	CallsMade          int       `json:"calls_made" gorm:"default:0"`
	AppointmentsSet    int       `json:"appointments_set" gorm:"default:0"`
	ShowsExpected      int       `json:"shows_expected" gorm:"default:0"`
	FollowUpsScheduled int       `json:"follow_ups_scheduled" gorm:"default:0"`
	Wins               string    `json:"wins"`
	Challenges         string    `json:"challenges"`
	TomorrowGoals      string    `json:"tomorrow_goals"`
	Notes              string    `json:"notes"`
	Timestamp          time.Time `json:"timestamp"`
}

func (EODReport) TableName() string {
	return "eod_reports"
}

func (r *EODReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
