// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role identifies a user's access level.
type Role string

const (
	// RoleAdmin has every capability.
	RoleAdmin Role = "admin"
	// RolePortaria is door staff: list management, guest submission, check-in, reports.
	RolePortaria Role = "portaria"
	// RoleUser is the default role: view events/lists and submit guests.
	RoleUser Role = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RolePortaria, RoleUser:
		return true
	}
	return false
}

// User represents an account in the Doorlist application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
