// Package permissions maps user roles to their fixed capability set.
//
// This is the single role-to-permission mapping in the codebase; handlers
// must not hardcode role comparisons for access decisions.
package permissions

import "doorlist/internal/models"

// Capabilities is the full set of boolean permissions a role grants.
// Resolve is total: every role, including unknown ones, maps to exactly
// one Capabilities value.
type Capabilities struct {
	ViewEvents      bool `json:"view_events"`
	ManageEvents    bool `json:"manage_events"`
	ViewLists       bool `json:"view_lists"`
	ManageLists     bool `json:"manage_lists"`
	ViewGuests      bool `json:"view_guests"`
	SubmitGuests    bool `json:"submit_guests"`
	ApproveGuests   bool `json:"approve_guests"`
	CheckIn         bool `json:"check_in"`
	ViewReports     bool `json:"view_reports"`
	ExportReports   bool `json:"export_reports"`
	ViewUsers       bool `json:"view_users"`
	ManageUsers     bool `json:"manage_users"`
	ViewLogs        bool `json:"view_logs"`
	ManageSettings  bool `json:"manage_settings"`
	ManageListTypes bool `json:"manage_list_types"`
	ManageSectors   bool `json:"manage_sectors"`
	ViewDashboard   bool `json:"view_dashboard"`
	DeleteGuests    bool `json:"delete_guests"`
}

// Resolve returns the capability set for the given role. Unknown or empty
// roles resolve to no capabilities at all.
func Resolve(role models.Role) Capabilities {
	switch role {
	case models.RoleAdmin:
		return Capabilities{
			ViewEvents:      true,
			ManageEvents:    true,
			ViewLists:       true,
			ManageLists:     true,
			ViewGuests:      true,
			SubmitGuests:    true,
			ApproveGuests:   true,
			CheckIn:         true,
			ViewReports:     true,
			ExportReports:   true,
			ViewUsers:       true,
			ManageUsers:     true,
			ViewLogs:        true,
			ManageSettings:  true,
			ManageListTypes: true,
			ManageSectors:   true,
			ViewDashboard:   true,
			DeleteGuests:    true,
		}
	case models.RolePortaria:
		return Capabilities{
			ViewEvents:    true,
			ViewLists:     true,
			ManageLists:   true,
			ViewGuests:    true,
			SubmitGuests:  true,
			CheckIn:       true,
			ViewReports:   true,
			ExportReports: true,
			ViewDashboard: true,
		}
	case models.RoleUser:
		return Capabilities{
			ViewEvents:   true,
			ViewLists:    true,
			SubmitGuests: true,
		}
	default:
		return Capabilities{}
	}
}
