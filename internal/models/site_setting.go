package models

import "time"

// Well-known site setting keys.
const (
	SettingSiteName                = "site_name"
	SettingSiteDescription         = "site_description"
	SettingPublicSubmissionEnabled = "public_submission_enabled"
	SettingMaxGuestsPerSubmission  = "max_guests_per_submission"
	SettingMaxNameLength           = "max_name_length"
)

// SiteSetting is a key/value configuration row, upserted by admins.
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"unique;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedBy *uint     `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
