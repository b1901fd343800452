package handlers

import (
	"errors"
	"net/http"
	"time"

	"serenemind/middleware"
	"serenemind/models"
	"serenemind/services/scheduling"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// SchedulingHandler serves availability checks and appointment operations.
type SchedulingHandler struct {
	Svc scheduling.SchedulingService
}

func NewSchedulingHandler(svc scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc}
}

// GetAvailability returns the bookable slots for a therapist and date.
// The evaluation time is captured here, at the request boundary.
func (h *SchedulingHandler) GetAvailability(c *gin.Context) {
	therapistID := c.Query("therapistId")
	date := c.Query("date")
	if therapistID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "therapistId and date are required")
		return
	}

	result, err := h.Svc.ResolveAvailability(c.Request.Context(), therapistID, date, time.Now())
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Book creates a new appointment for the authenticated user.
func (h *SchedulingHandler) Book(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), userID, input)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// Cancel cancels one of the user's scheduled appointments.
func (h *SchedulingHandler) Cancel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	appointmentID := c.Param("appointmentID")

	if err := h.Svc.CancelAppointment(c.Request.Context(), userID, appointmentID); err != nil {
		writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// List returns the user's appointments, newest first.
func (h *SchedulingHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	appts, err := h.Svc.ListUserAppointments(c.Request.Context(), userID)
	if err != nil {
		writeSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// writeSchedulingError maps the scheduling error taxonomy onto HTTP statuses.
func writeSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrInvalidDate), errors.Is(err, scheduling.ErrUnknownSlot):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, scheduling.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "slot no longer available", "please pick another time")
	case errors.Is(err, scheduling.ErrStoragePermissionDenied):
		utils.JSONError(c, http.StatusForbidden, "not permitted", err.Error())
	case errors.Is(err, scheduling.ErrStorageUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "temporarily unavailable", "please try again later")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "scheduling failed", err.Error())
	}
}
