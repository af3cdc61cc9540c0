package database

import "sahayogi/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.VolunteerProfile{},
		&models.HelpRequest{},
	}
}
