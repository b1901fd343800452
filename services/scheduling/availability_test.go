package scheduling

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"serenemind/models"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository for tests.
type fakeAppointmentRepo struct {
	scheduled      map[string][]string // therapistID|date -> slot labels
	scheduledAppts []models.Appointment
	created        []*models.Appointment
	createErr      error
	timesErr       error
	byID           map[string]*models.Appointment
	updated        [][3]string // id, fromStatus, toStatus
}

func (f *fakeAppointmentRepo) key(therapistID, date string) string {
	return therapistID + "|" + date
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, appt)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) GetScheduledTimes(ctx context.Context, therapistID, date string) ([]string, error) {
	if f.timesErr != nil {
		return nil, f.timesErr
	}
	return f.scheduled[f.key(therapistID, date)], nil
}

func (f *fakeAppointmentRepo) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListScheduledThrough(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.scheduledAppts {
		if a.Status == models.AppointmentScheduled && a.Date <= date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) error {
	f.updated = append(f.updated, [3]string{id, fromStatus, toStatus})
	return nil
}

func mustInstant(t *testing.T, value string) time.Time {
	t.Helper()
	instant, err := time.ParseInLocation("2006-01-02 15:04", value, time.UTC)
	if err != nil {
		t.Fatalf("bad test instant %q: %v", value, err)
	}
	return instant
}

func TestResolveAvailability(t *testing.T) {
	tests := []struct {
		name   string
		booked []string
		date   string
		now    string
		want   []string
	}{
		{
			name: "all slots free early in the day",
			date: "2025-06-01",
			now:  "2025-06-01 08:00",
			want: []string{"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
		},
		{
			name:   "booked slot excluded, order preserved",
			booked: []string{"10:00 AM"},
			date:   "2025-06-01",
			now:    "2025-06-01 08:00",
			want:   []string{"9:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
		},
		{
			name:   "past slots excluded on the booking day",
			booked: []string{"10:00 AM"},
			date:   "2025-06-01",
			now:    "2025-06-01 09:30",
			want:   []string{"11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
		},
		{
			name: "slot starting exactly now is not bookable",
			date: "2025-06-01",
			now:  "2025-06-01 09:00",
			want: []string{"10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
		},
		{
			name:   "future date keeps every free slot",
			booked: []string{"1:00 PM", "4:00 PM"},
			date:   "2025-06-02",
			now:    "2025-06-01 23:00",
			want:   []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"},
		},
		{
			name:   "fully booked day",
			booked: []string{"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
			date:   "2025-06-02",
			now:    "2025-06-01 08:00",
			want:   []string{},
		},
		{
			name: "all slots elapsed",
			date: "2025-06-01",
			now:  "2025-06-01 18:00",
			want: []string{},
		},
		{
			name:   "unknown booked label is ignored",
			booked: []string{"5:00 PM"},
			date:   "2025-06-02",
			now:    "2025-06-01 08:00",
			want:   []string{"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{scheduled: map[string][]string{
				"th-1|" + tc.date: tc.booked,
			}}
			svc := &DefaultSchedulingService{Repo: repo}

			result, err := svc.ResolveAvailability(context.Background(), "th-1", tc.date, mustInstant(t, tc.now))
			if err != nil {
				t.Fatalf("ResolveAvailability returned error: %v", err)
			}
			if !reflect.DeepEqual(result.Available, tc.want) {
				t.Errorf("available = %v, want %v", result.Available, tc.want)
			}
			if len(tc.want) == 0 && result.Advisory != NoSlotsAdvisory {
				t.Errorf("advisory = %q, want %q", result.Advisory, NoSlotsAdvisory)
			}
			if len(tc.want) > 0 && result.Advisory != "" {
				t.Errorf("advisory = %q, want empty", result.Advisory)
			}
		})
	}
}

func TestResolveAvailabilityIsReadOnly(t *testing.T) {
	repo := &fakeAppointmentRepo{scheduled: map[string][]string{
		"th-1|2025-06-02": {"10:00 AM"},
	}}
	svc := &DefaultSchedulingService{Repo: repo}
	now := mustInstant(t, "2025-06-01 08:00")

	first, err := svc.ResolveAvailability(context.Background(), "th-1", "2025-06-02", now)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.ResolveAvailability(context.Background(), "th-1", "2025-06-02", now)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across identical calls: %v vs %v", first, second)
	}
	if len(repo.created) != 0 || len(repo.updated) != 0 {
		t.Error("availability check must not write to storage")
	}
}

func TestResolveAvailabilityInvalidDate(t *testing.T) {
	now := mustInstant(t, "2025-06-01 08:00")
	tests := []struct {
		name string
		date string
	}{
		{"unparseable", "junk"},
		{"wrong layout", "06/01/2025"},
		{"day before today", "2025-05-31"},
		{"far in the past", "1999-01-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &DefaultSchedulingService{Repo: &fakeAppointmentRepo{}}
			_, err := svc.ResolveAvailability(context.Background(), "th-1", tc.date, now)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("error = %v, want ErrInvalidDate", err)
			}
		})
	}
}

func TestResolveAvailabilityTodayIsValid(t *testing.T) {
	// Today's date passes validation even late in the day; the roster filter
	// then empties the result rather than erroring.
	svc := &DefaultSchedulingService{Repo: &fakeAppointmentRepo{}}
	result, err := svc.ResolveAvailability(context.Background(), "th-1", "2025-06-01", mustInstant(t, "2025-06-01 23:59"))
	if err != nil {
		t.Fatalf("ResolveAvailability returned error: %v", err)
	}
	if len(result.Available) != 0 {
		t.Errorf("available = %v, want none", result.Available)
	}
	if result.Advisory != NoSlotsAdvisory {
		t.Errorf("advisory = %q, want %q", result.Advisory, NoSlotsAdvisory)
	}
}
