package models

import "time"

// RequestStatus defines lifecycle states for help requests.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is awaiting a volunteer.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted indicates a volunteer has taken the request.
	RequestStatusAccepted RequestStatus = "accepted"
	// RequestStatusCompleted indicates the request was fulfilled.
	RequestStatusCompleted RequestStatus = "completed"
	// RequestStatusCancelled indicates the owner withdrew the request.
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted from the status.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// RequestCategory classifies the kind of help being requested.
type RequestCategory string

const (
	CategoryShopping       RequestCategory = "shopping"
	CategoryMedical        RequestCategory = "medical"
	CategoryTransportation RequestCategory = "transportation"
	CategoryCompanionship  RequestCategory = "companionship"
	CategoryHousework      RequestCategory = "housework"
	CategoryTechnology     RequestCategory = "technology"
	CategoryOther          RequestCategory = "other"
)

// Categories lists every valid request category.
var Categories = []RequestCategory{
	CategoryShopping,
	CategoryMedical,
	CategoryTransportation,
	CategoryCompanionship,
	CategoryHousework,
	CategoryTechnology,
	CategoryOther,
}

// ValidCategory reports whether c is a member of the category enumeration.
func ValidCategory(c RequestCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RequestUrgency is a three-tier priority hint, independent of status.
type RequestUrgency string

const (
	UrgencyLow    RequestUrgency = "low"
	UrgencyMedium RequestUrgency = "medium"
	UrgencyHigh   RequestUrgency = "high"
)

// ValidUrgency reports whether u is a member of the urgency enumeration.
func ValidUrgency(u RequestUrgency) bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// HelpRequest is a single help task posted by an elderly user, tracked through
// a fixed status lifecycle: pending -> accepted -> completed, with pending ->
// cancelled as the only other exit. CompletedAt is set exactly once on the
// transition to completed. VolunteerID, once set, never changes.
type HelpRequest struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"size:160;not null" json:"title"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Category     RequestCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Urgency      RequestUrgency  `gorm:"type:varchar(10);not null;default:'medium'" json:"urgency"`
	Status       RequestStatus   `gorm:"type:varchar(20);not null;default:'pending';index:idx_requests_status" json:"status"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	ElderlyID    uint            `gorm:"not null;index" json:"elderly_id"`
	Elderly      *User           `gorm:"foreignKey:ElderlyID" json:"elderly,omitempty"`
	VolunteerID  *uint           `gorm:"index" json:"volunteer_id,omitempty"`
	Volunteer    *User           `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	Address      string          `json:"address"`
	Lat          *float64        `json:"lat,omitempty"`
	Lng          *float64        `json:"lng,omitempty"`
	CreatedAt    time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (HelpRequest) TableName() string {
	return "help_requests"
}

// CanTransitionTo reports whether the state machine permits moving from the
// request's current status to the target status.
func (r *HelpRequest) CanTransitionTo(target RequestStatus) bool {
	switch r.Status {
	case RequestStatusPending:
		return target == RequestStatusAccepted || target == RequestStatusCancelled
	case RequestStatusAccepted:
		return target == RequestStatusCompleted
	}
	return false
}
