package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Call struct {
	ID                     string     `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp              *time.Time `json:"timestamp"`
	BookingDate            time.Time  `json:"booking_date" gorm:"not null;index"`
	LeadName               string     `json:"lead_name"`
	LeadEmail              string     `json:"lead_email"`
	LeadPhone              string     `json:"lead_phone"`
	OfferMade              bool       `json:"offer_made" gorm:"default:false"`
	Result                 string     `json:"result"` // empty when no outcome recorded yet
	CloserID               *string    `json:"closer_id" gorm:"type:uuid;index"`
	CloserName             string     `json:"closer_name"`
	SetterID               *string    `json:"setter_id" gorm:"type:uuid;index"`
	SetterName             string     `json:"setter_name"`
	Revenue                float64    `json:"revenue" gorm:"default:0"`
	CashCollected          float64    `json:"cash_collected" gorm:"default:0"`
	CashCollected2         float64    `json:"cash_collected_2" gorm:"default:0"`
	CommissionOverride     *float64   `json:"commission_override"`
	CommissionRateOverride *float64   `json:"commission_rate_override"`
	LeadSource             string     `json:"lead_source"`
	Medium                 string     `json:"medium"`
	Campaign               string     `json:"campaign"`
	CallRecordingLink      string     `json:"call_recording_link"`
	SalesPlatform          string     `json:"sales_platform"`
	PaymentMethod          string     `json:"payment_method"`
	Notes                  string     `json:"notes"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (c *Call) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TotalCash is the full amount received for a call. Payments frequently come
// in as two installments, hence the second cash field.
func (c *Call) TotalCash() float64 {
	return c.CashCollected + c.CashCollected2
}

type CallResult string

const (
	ResultClosed     CallResult = "Closed"
	ResultFollowUp   CallResult = "Follow-Up Scheduled"
	ResultNoShow     CallResult = "No Show"
	ResultDQ         CallResult = "DQ"
	ResultReschedule CallResult = "Reschedule"
	ResultOther      CallResult = "Other"

	// ResultLive no longer appears on the submission form but exists in
	// historical rows; statistics must keep recognizing it.
	ResultLive CallResult = "Live"
)
