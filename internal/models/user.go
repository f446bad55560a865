package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Role         string    `json:"role" gorm:"default:'setter'"` // admin, closer, setter
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleCloser UserRole = "closer"
	RoleSetter UserRole = "setter"
)
