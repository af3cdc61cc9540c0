package models

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name   string
		from   RequestStatus
		to     RequestStatus
		expect bool
	}{
		{"pending to accepted", RequestStatusPending, RequestStatusAccepted, true},
		{"pending to cancelled", RequestStatusPending, RequestStatusCancelled, true},
		{"pending to completed", RequestStatusPending, RequestStatusCompleted, false},
		{"accepted to completed", RequestStatusAccepted, RequestStatusCompleted, true},
		{"accepted to cancelled", RequestStatusAccepted, RequestStatusCancelled, false},
		{"accepted to pending", RequestStatusAccepted, RequestStatusPending, false},
		{"completed is terminal", RequestStatusCompleted, RequestStatusAccepted, false},
		{"cancelled is terminal", RequestStatusCancelled, RequestStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := HelpRequest{Status: tc.from}
			if got := r.CanTransitionTo(tc.to); got != tc.expect {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.expect)
			}
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	if RequestStatusPending.Terminal() || RequestStatusAccepted.Terminal() {
		t.Fatal("pending and accepted must not be terminal")
	}
	if !RequestStatusCompleted.Terminal() || !RequestStatusCancelled.Terminal() {
		t.Fatal("completed and cancelled must be terminal")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	if ValidCategory("gardening") {
		t.Error("unknown category accepted")
	}
}

func TestValidUrgency(t *testing.T) {
	for _, u := range []RequestUrgency{UrgencyLow, UrgencyMedium, UrgencyHigh} {
		if !ValidUrgency(u) {
			t.Errorf("ValidUrgency(%q) = false, want true", u)
		}
	}
	if ValidUrgency("critical") {
		t.Error("unknown urgency accepted")
	}
}

func TestAvailabilityBucket(t *testing.T) {
	a := Availability{Weekdays: true, Evenings: true}
	if !a.Bucket("weekdays") || !a.Bucket("evenings") {
		t.Error("declared buckets not reported")
	}
	if a.Bucket("weekends") || a.Bucket("mornings") {
		t.Error("undeclared buckets reported as available")
	}
	if a.Bucket("midnight") {
		t.Error("unknown bucket reported as available")
	}
}
