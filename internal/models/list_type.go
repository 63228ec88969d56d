package models

import "time"

// ListType is a categorical tag applied to an event list (e.g. "VIP").
type ListType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `gorm:"type:varchar(20)" json:"color"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
