// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// UserRole distinguishes elderly users requesting help from volunteers fulfilling it.
type UserRole string

const (
	// RoleElderly is a user who posts help requests.
	RoleElderly UserRole = "elderly"
	// RoleVolunteer is a user who accepts and fulfills help requests.
	RoleVolunteer UserRole = "volunteer"
)

// ValidRole reports whether the given role is a known user role.
func ValidRole(r UserRole) bool {
	return r == RoleElderly || r == RoleVolunteer
}

// FontSize is the display font-size tier in a user's accessibility preferences.
type FontSize string

const (
	FontSizeNormal     FontSize = "normal"
	FontSizeLarge      FontSize = "large"
	FontSizeExtraLarge FontSize = "extra-large"
)

// UserPreferences holds notification and display preferences. Stored inline
// on the users table.
type UserPreferences struct {
	Notifications bool     `gorm:"default:true" json:"notifications"`
	EmailUpdates  bool     `gorm:"default:false" json:"email_updates"`
	FontSize      FontSize `gorm:"type:varchar(20);default:'normal'" json:"font_size"`
	HighContrast  bool     `gorm:"default:false" json:"high_contrast"`
}

// User represents a person on the platform, tagged with a role.
type User struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:120;not null" json:"name"`
	Email       string          `gorm:"unique;not null" json:"email"`
	Password    string          `gorm:"not null" json:"-"`
	Role        UserRole        `gorm:"type:varchar(20);not null;index" json:"role"`
	Avatar      string          `json:"avatar"`
	Phone       string          `gorm:"size:40" json:"phone"`
	Address     string          `json:"address"`
	Bio         string          `gorm:"type:text" json:"bio"`
	Preferences UserPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
