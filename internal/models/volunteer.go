package models

import "time"

// VerificationStatus is the background-check state of a volunteer profile.
type VerificationStatus string

const (
	// VerificationPending indicates the volunteer has not been verified yet.
	VerificationPending VerificationStatus = "pending"
	// VerificationVerified indicates the volunteer passed verification.
	VerificationVerified VerificationStatus = "verified"
)

// Availability is a volunteer's self-declared day/time-of-day buckets in which
// they are willing to be matched.
type Availability struct {
	Weekdays   bool `gorm:"default:false" json:"weekdays"`
	Weekends   bool `gorm:"default:false" json:"weekends"`
	Mornings   bool `gorm:"default:false" json:"mornings"`
	Afternoons bool `gorm:"default:false" json:"afternoons"`
	Evenings   bool `gorm:"default:false" json:"evenings"`
}

// Bucket returns the availability flag for a named bucket. Unknown bucket
// names report false.
func (a Availability) Bucket(name string) bool {
	switch name {
	case "weekdays":
		return a.Weekdays
	case "weekends":
		return a.Weekends
	case "mornings":
		return a.Mornings
	case "afternoons":
		return a.Afternoons
	case "evenings":
		return a.Evenings
	}
	return false
}

// VolunteerProfile extends a volunteer-role User with matching metadata.
// Exactly one profile exists per volunteer user.
type VolunteerProfile struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	UserID             uint               `gorm:"uniqueIndex;not null" json:"user_id"`
	User               *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skills             []string           `gorm:"serializer:json" json:"skills"`
	Availability       Availability       `gorm:"embedded;embeddedPrefix:avail_" json:"availability"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"verification_status"`
	Rating             float64            `gorm:"default:0" json:"rating"`
	CompletedRequests  int                `gorm:"default:0" json:"completed_requests"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (VolunteerProfile) TableName() string {
	return "volunteer_profiles"
}

// HasSkill reports whether the profile lists the given skill tag.
func (p *VolunteerProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
