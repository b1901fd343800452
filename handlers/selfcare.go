package handlers

import (
	"errors"
	"net/http"

	"serenemind/services/selfcare"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// SelfCareHandler serves the self-care questionnaire and recommendations.
type SelfCareHandler struct {
	Svc selfcare.SelfCareService
}

func NewSelfCareHandler(svc selfcare.SelfCareService) *SelfCareHandler {
	return &SelfCareHandler{Svc: svc}
}

// Columns returns the question-form descriptors.
func (h *SelfCareHandler) Columns(c *gin.Context) {
	columns, err := h.Svc.Columns(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "catalog unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, columns)
}

// Recommend answers a questionnaire with the best-matching advice.
func (h *SelfCareHandler) Recommend(c *gin.Context) {
	var query map[string]string
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	advice, err := h.Svc.Recommend(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, selfcare.ErrEmptyQuery):
			utils.JSONError(c, http.StatusBadRequest, "empty query", "answer at least one question")
		case errors.Is(err, selfcare.ErrEmptyCatalog):
			utils.JSONError(c, http.StatusServiceUnavailable, "catalog unavailable", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "recommendation failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
