package handlers

import (
	"net/http"

	"serenemind/middleware"
	"serenemind/models"
	"serenemind/services/mood"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// MoodHandler serves mood logging and summaries.
type MoodHandler struct {
	Svc mood.MoodService
}

func NewMoodHandler(svc mood.MoodService) *MoodHandler {
	return &MoodHandler{Svc: svc}
}

// Log records the user's mood for a day.
func (h *MoodHandler) Log(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.MoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entry, err := h.Svc.LogMood(c.Request.Context(), userID, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to log mood", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Range lists entries between the from and to query dates.
func (h *MoodHandler) Range(c *gin.Context) {
	userID := middleware.GetUserID(c)
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to are required")
		return
	}

	entries, err := h.Svc.ListRange(c.Request.Context(), userID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to list moods", err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

// WeeklySummary aggregates the week ending at the given date.
func (h *MoodHandler) WeeklySummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	endDate := c.Query("endDate")
	if endDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "endDate is required")
		return
	}

	summary, err := h.Svc.WeeklySummary(c.Request.Context(), userID, endDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to summarize moods", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
