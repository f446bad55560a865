package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCommissionRate applies to closers auto-provisioned from a call
// submission, as a percentage.
const DefaultCommissionRate = 10.0

type Closer struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email"`
	CommissionRate float64   `json:"commission_rate" gorm:"default:10"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *Closer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
