package models

import (
	"time"

	"gorm.io/gorm"
)

// GuestStatus is the approval state of a guest entry.
type GuestStatus string

const (
	// GuestStatusPending awaits staff approval.
	GuestStatusPending GuestStatus = "pending"
	// GuestStatusApproved is cleared for entry.
	GuestStatusApproved GuestStatus = "approved"
	// GuestStatusRejected was declined by staff.
	GuestStatusRejected GuestStatus = "rejected"
)

// Guest is a single name on an event list.
// Invariant: CheckedInAt is non-nil if and only if CheckedIn is true; the
// same holds for CheckedInBy. GuestService.CheckIn/CheckOut are the only
// writers of these fields.
type Guest struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email,omitempty"`
	EventID     uint        `gorm:"not null;index" json:"event_id"`
	Event       *Event      `gorm:"foreignKey:EventID" json:"event,omitempty"`
	EventListID *uint       `gorm:"index" json:"event_list_id,omitempty"`
	EventList   *EventList  `gorm:"foreignKey:EventListID" json:"event_list,omitempty"`
	Status      GuestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CheckedIn   bool       `gorm:"not null;default:false" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CheckedInBy *uint      `json:"checked_in_by,omitempty"`

	// Submitter identity: SubmittedBy for authenticated submissions,
	// SenderName/SenderEmail for anonymous public ones.
	SubmittedBy *uint  `gorm:"index" json:"submitted_by,omitempty"`
	SenderName  string `json:"sender_name,omitempty"`
	SenderEmail string `json:"sender_email,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
