package scheduling

import (
	"context"
	"testing"

	"serenemind/models"
)

func TestCompleteElapsed(t *testing.T) {
	repo := &fakeAppointmentRepo{scheduledAppts: []models.Appointment{
		{ID: "a-yesterday", Date: "2025-05-31", Time: "3:00 PM", Status: models.AppointmentScheduled},
		{ID: "a-this-morning", Date: "2025-06-01", Time: "9:00 AM", Status: models.AppointmentScheduled},
		{ID: "a-this-afternoon", Date: "2025-06-01", Time: "4:00 PM", Status: models.AppointmentScheduled},
		{ID: "a-tomorrow", Date: "2025-06-02", Time: "9:00 AM", Status: models.AppointmentScheduled},
	}}
	svc := &DefaultSchedulingService{Repo: repo}

	n, err := svc.CompleteElapsed(context.Background(), mustInstant(t, "2025-06-01 12:00"))
	if err != nil {
		t.Fatalf("CompleteElapsed: %v", err)
	}
	if n != 2 {
		t.Errorf("completed %d appointments, want 2", n)
	}

	completed := make(map[string]bool)
	for _, u := range repo.updated {
		if u[1] != models.AppointmentScheduled || u[2] != models.AppointmentCompleted {
			t.Errorf("unexpected transition %v", u)
		}
		completed[u[0]] = true
	}
	if !completed["a-yesterday"] || !completed["a-this-morning"] {
		t.Errorf("elapsed appointments not completed: %v", completed)
	}
	if completed["a-this-afternoon"] || completed["a-tomorrow"] {
		t.Errorf("future appointments must stay scheduled: %v", completed)
	}
}

func TestCompleteElapsedSkipsBadSlotLabel(t *testing.T) {
	repo := &fakeAppointmentRepo{scheduledAppts: []models.Appointment{
		{ID: "a-corrupt", Date: "2025-05-31", Time: "not a time", Status: models.AppointmentScheduled},
		{ID: "a-ok", Date: "2025-05-31", Time: "9:00 AM", Status: models.AppointmentScheduled},
	}}
	svc := &DefaultSchedulingService{Repo: repo}

	n, err := svc.CompleteElapsed(context.Background(), mustInstant(t, "2025-06-01 12:00"))
	if err != nil {
		t.Fatalf("CompleteElapsed: %v", err)
	}
	if n != 1 {
		t.Errorf("completed %d appointments, want 1", n)
	}
	if len(repo.updated) != 1 || repo.updated[0][0] != "a-ok" {
		t.Errorf("updates = %v, want only a-ok", repo.updated)
	}
}

func TestCompleteElapsedEmpty(t *testing.T) {
	svc := &DefaultSchedulingService{Repo: &fakeAppointmentRepo{}}

	n, err := svc.CompleteElapsed(context.Background(), mustInstant(t, "2025-06-01 12:00"))
	if err != nil {
		t.Fatalf("CompleteElapsed: %v", err)
	}
	if n != 0 {
		t.Errorf("completed %d appointments, want 0", n)
	}
}
