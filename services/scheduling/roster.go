package scheduling

import (
	"fmt"
	"time"
)

// SlotRoster is the fixed daily roster of bookable session times, identical
// for every therapist and every date. Availability results preserve this
// order.
var SlotRoster = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

const (
	dateLayout = "2006-01-02"
	slotLayout = "3:04 PM"
)

// SlotInstant combines a calendar date with a 12-hour slot label and returns
// the absolute instant in the given location. "12:00 AM" maps to hour 0 and
// "12:00 PM" to hour 12.
func SlotInstant(date, label string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout+" "+slotLayout, date+" "+label, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q: %w", label, err)
	}
	return t, nil
}

// rosterContains reports whether the label is part of the fixed roster.
func rosterContains(label string) bool {
	for _, s := range SlotRoster {
		if s == label {
			return true
		}
	}
	return false
}
