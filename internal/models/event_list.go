package models

import (
	"time"

	"gorm.io/gorm"
)

// EventList is a named, capacity-bounded subdivision of an event's guests,
// tagged with one list type and one sector.
type EventList struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	EventID    uint      `gorm:"not null;index" json:"event_id"`
	Event      *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	ListTypeID uint      `gorm:"not null" json:"list_type_id"`
	ListType   *ListType `gorm:"foreignKey:ListTypeID" json:"list_type,omitempty"`
	SectorID   uint      `gorm:"not null" json:"sector_id"`
	Sector     *Sector   `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
	// MaxCapacity of 0 means unbounded.
	MaxCapacity int `json:"max_capacity"`
	// GuestCount is not persisted; computed at query time.
	GuestCount int            `gorm:"->;-:migration" json:"guest_count"`
	Guests     []Guest        `gorm:"foreignKey:EventListID" json:"guests,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
