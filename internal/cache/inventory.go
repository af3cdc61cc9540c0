package cache

import (
	"fmt"
	"time"
)

const (
	userKeyPrefix    = "user:%d"
	summaryKeyPrefix = "summary:%s:%d"
	volunteerDirKey  = "volunteers:directory"
)

const (
	// UserTTL bounds staleness of cached user records.
	UserTTL = 5 * time.Minute
	// SummaryTTL bounds staleness of dashboard status counts.
	SummaryTTL = 30 * time.Second
	// VolunteerDirectoryTTL bounds staleness of the volunteer discovery listing.
	VolunteerDirectoryTTL = 2 * time.Minute
)

// UserKey is the cache key for a user record.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// SummaryKey is the cache key for a user's dashboard request counts.
func SummaryKey(role string, userID uint) string {
	return fmt.Sprintf(summaryKeyPrefix, role, userID)
}

// VolunteerDirectoryKey is the cache key for the unfiltered volunteer listing.
func VolunteerDirectoryKey() string {
	return volunteerDirKey
}
