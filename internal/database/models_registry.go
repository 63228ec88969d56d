package database

import "doorlist/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Event{},
		&models.ListType{},
		&models.Sector{},
		&models.EventList{},
		&models.Guest{},
		&models.ActivityLog{},
		&models.SiteSetting{},
	}
}
