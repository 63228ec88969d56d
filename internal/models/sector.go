package models

import "time"

// Sector is a venue subdivision (e.g. "Pista", "Camarote") applied to an event list.
type Sector struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Color     string    `gorm:"type:varchar(20)" json:"color"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
