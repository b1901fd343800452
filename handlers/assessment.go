package handlers

import (
	"net/http"

	"serenemind/middleware"
	"serenemind/models"
	"serenemind/services/assessment"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// AssessmentHandler serves questionnaire submission and history.
type AssessmentHandler struct {
	Svc assessment.AssessmentService
}

func NewAssessmentHandler(svc assessment.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{Svc: svc}
}

// Submit scores and stores a questionnaire.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.AssessmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), userID, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to submit assessment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// List returns the user's past assessments.
func (h *AssessmentHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	assessments, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list assessments", err.Error())
		return
	}
	c.JSON(http.StatusOK, assessments)
}
