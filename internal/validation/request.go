package validation

import (
	"sort"
	"strings"
	"time"

	"sahayogi/internal/models"
)

// FieldErrors maps input field names to human-readable validation messages.
// A nil or empty map means the input is valid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// RequestInput is the raw create-request form submission.
type RequestInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Urgency       string `json:"urgency"`
	Address       string `json:"address"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	VolunteerID   *uint  `json:"volunteer_id"`
}

// ValidateRequestInput checks a create-request submission. Every violation is
// reported at field granularity and the whole submission is rejected if any
// field fails. When a scheduled date/time pair is supplied, the combined
// timestamp is returned.
func ValidateRequestInput(in RequestInput) (*time.Time, FieldErrors) {
	errs := FieldErrors{}

	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "Address is required"
	}
	if !models.ValidCategory(models.RequestCategory(in.Category)) {
		errs["category"] = "Unknown category"
	}
	if !models.ValidUrgency(models.RequestUrgency(in.Urgency)) {
		errs["urgency"] = "Unknown urgency"
	}

	var scheduledFor *time.Time
	switch {
	case in.ScheduledDate != "" && in.ScheduledTime == "":
		errs["scheduled_time"] = "Time is required when date is provided"
	case in.ScheduledDate == "" && in.ScheduledTime != "":
		errs["scheduled_date"] = "Date is required when time is provided"
	case in.ScheduledDate != "" && in.ScheduledTime != "":
		ts, err := time.Parse("2006-01-02 15:04", in.ScheduledDate+" "+in.ScheduledTime)
		if err != nil {
			errs["scheduled_date"] = "Invalid date or time"
		} else {
			scheduledFor = &ts
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return scheduledFor, nil
}
