package models

import "time"

// Activity log action labels.
const (
	ActionGuestsSubmitted = "guests_submitted"
	ActionGuestCheckedIn  = "guest_checked_in"
	ActionGuestCheckedOut = "guest_checked_out"
	ActionGuestApproved   = "guest_approved"
	ActionGuestRejected   = "guest_rejected"
	ActionGuestDeleted    = "guest_deleted"
	ActionUserCreated     = "user_created"
	ActionUserDeleted     = "user_deleted"
	ActionSettingUpdated  = "setting_updated"
	ActionEventCreated    = "event_created"
	ActionEventUpdated    = "event_updated"
	ActionEventDeleted    = "event_deleted"
	ActionListCreated     = "list_created"
	ActionListUpdated     = "list_updated"
	ActionListDeleted     = "list_deleted"
)

// ActivityLog is an append-only audit row. The application never updates or
// deletes these records.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EventID   *uint     `gorm:"index" json:"event_id,omitempty"`
	Event     *Event    `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Action    string    `gorm:"not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
