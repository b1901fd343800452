package scheduling

import (
	"testing"
	"time"
)

func TestSlotInstant(t *testing.T) {
	tests := []struct {
		label string
		want  string // ISO instant in UTC
	}{
		{"9:00 AM", "2025-06-01T09:00:00Z"},
		{"12:00 AM", "2025-06-01T00:00:00Z"},
		{"12:00 PM", "2025-06-01T12:00:00Z"},
		{"1:00 PM", "2025-06-01T13:00:00Z"},
		{"4:00 PM", "2025-06-01T16:00:00Z"},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got, err := SlotInstant("2025-06-01", tc.label, time.UTC)
			if err != nil {
				t.Fatalf("SlotInstant: %v", err)
			}
			want, _ := time.Parse(time.RFC3339, tc.want)
			if !got.Equal(want) {
				t.Errorf("SlotInstant = %v, want %v", got, want)
			}
		})
	}
}

func TestSlotInstantRejectsBadLabels(t *testing.T) {
	for _, label := range []string{"", "25:00 PM", "9 AM", "09:00"} {
		if _, err := SlotInstant("2025-06-01", label, time.UTC); err == nil {
			t.Errorf("SlotInstant(%q) succeeded, want error", label)
		}
	}
}

func TestRosterLabelsParse(t *testing.T) {
	// Every roster label must round-trip through the slot layout; a label
	// that fails here would silently vanish from availability results.
	for _, label := range SlotRoster {
		if _, err := SlotInstant("2025-06-01", label, time.UTC); err != nil {
			t.Errorf("roster label %q does not parse: %v", label, err)
		}
	}
	if !rosterContains("9:00 AM") {
		t.Error("rosterContains rejected a roster label")
	}
	if rosterContains("9:30 AM") {
		t.Error("rosterContains accepted a non-roster label")
	}
}
