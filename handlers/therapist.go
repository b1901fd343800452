package handlers

import (
	"net/http"

	"serenemind/models"
	"serenemind/services/therapist"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler serves the therapist directory.
type TherapistHandler struct {
	Svc therapist.TherapistService
}

func NewTherapistHandler(svc therapist.TherapistService) *TherapistHandler {
	return &TherapistHandler{Svc: svc}
}

// List returns all active therapists.
func (h *TherapistHandler) List(c *gin.Context) {
	therapists, err := h.Svc.ListActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list therapists", err.Error())
		return
	}
	c.JSON(http.StatusOK, therapists)
}

// Get returns one therapist profile.
func (h *TherapistHandler) Get(c *gin.Context) {
	t, err := h.Svc.GetByID(c.Request.Context(), c.Param("therapistID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "therapist not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, t)
}

// Create adds a therapist to the directory.
func (h *TherapistHandler) Create(c *gin.Context) {
	var input models.Therapist
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), &input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create therapist", err.Error())
		return
	}
	c.JSON(http.StatusCreated, t)
}
