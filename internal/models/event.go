package models

import (
	"time"

	"gorm.io/gorm"
)

// EventStatus is the lifecycle state of an event.
// The legacy data carried draft/published variants inconsistently; they are
// folded into active/inactive here.
type EventStatus string

const (
	// EventStatusActive is an upcoming or running event accepting guests.
	EventStatusActive EventStatus = "active"
	// EventStatusInactive is a hidden or paused event.
	EventStatusInactive EventStatus = "inactive"
	// EventStatusCompleted is a finished event kept for reporting.
	EventStatusCompleted EventStatus = "completed"
)

// ValidEventStatus reports whether s is one of the known statuses.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusActive, EventStatusInactive, EventStatusCompleted:
		return true
	}
	return false
}

// Event represents a party or show with one or more guest lists.
type Event struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Date        string      `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Time        string      `gorm:"type:varchar(5)" json:"time"`           // HH:MM
	Location    string      `json:"location"`
	Status      EventStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Capacity    int         `json:"capacity"`
	CreatedBy   uint        `gorm:"index" json:"created_by"`
	Lists       []EventList `gorm:"foreignKey:EventID" json:"lists,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
