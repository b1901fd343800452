package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"serenemind/models"
	"serenemind/services/scheduling"

	"github.com/gin-gonic/gin"
)

// stubSchedulingService returns canned results for handler tests.
type stubSchedulingService struct {
	result models.AvailabilityResult
	appt   *models.Appointment
	err    error
}

func (s *stubSchedulingService) ResolveAvailability(ctx context.Context, therapistID, date string, now time.Time) (models.AvailabilityResult, error) {
	return s.result, s.err
}

func (s *stubSchedulingService) BookAppointment(ctx context.Context, userID string, input models.AppointmentInput) (*models.Appointment, error) {
	return s.appt, s.err
}

func (s *stubSchedulingService) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	return s.err
}

func (s *stubSchedulingService) CompleteAppointment(ctx context.Context, appointmentID string) error {
	return s.err
}

func (s *stubSchedulingService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	return 0, s.err
}

func (s *stubSchedulingService) ListUserAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	return nil, s.err
}

func newAvailabilityRouter(svc *stubSchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSchedulingHandler(svc)
	r.GET("/appointments/availability", h.GetAvailability)
	r.POST("/appointments", h.Book)
	return r
}

func TestGetAvailability(t *testing.T) {
	svc := &stubSchedulingService{result: models.AvailabilityResult{
		Available: []string{"9:00 AM", "11:00 AM"},
	}}
	r := newAvailabilityRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments/availability?therapistId=th-1&date=2025-06-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body models.AvailabilityResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Available) != 2 || body.Available[0] != "9:00 AM" {
		t.Errorf("available = %v", body.Available)
	}
}

func TestGetAvailabilityMissingParams(t *testing.T) {
	r := newAvailabilityRouter(&stubSchedulingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointments/availability?date=2025-06-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSchedulingErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid date", scheduling.ErrInvalidDate, http.StatusBadRequest},
		{"unknown slot", scheduling.ErrUnknownSlot, http.StatusBadRequest},
		{"slot taken", scheduling.ErrSlotTaken, http.StatusConflict},
		{"permission denied", scheduling.ErrStoragePermissionDenied, http.StatusForbidden},
		{"storage unavailable", scheduling.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newAvailabilityRouter(&stubSchedulingService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/appointments/availability?therapistId=th-1&date=2025-06-01", nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestBookSlotTakenConflict(t *testing.T) {
	r := newAvailabilityRouter(&stubSchedulingService{err: scheduling.ErrSlotTaken})

	body := `{"therapistId":"th-1","date":"2025-06-01","time":"10:00 AM"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}
