package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"serenemind/middleware"
	"serenemind/models"
	"serenemind/services/journal"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JournalHandler serves the user's private journal.
type JournalHandler struct {
	Svc journal.JournalService
}

func NewJournalHandler(svc journal.JournalService) *JournalHandler {
	return &JournalHandler{Svc: svc}
}

// Create stores a new entry.
func (h *JournalHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entry, err := h.Svc.CreateEntry(c.Request.Context(), userID, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create entry", err.Error())
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// maxAttachmentBytes caps uploaded journal images at 10 MB.
const maxAttachmentBytes = 10 << 20

// Upload receives a multipart image, pushes it to storage and returns the
// URL to reference from a subsequent Create call.
func (h *JournalHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "an image file is required")
		return
	}
	if file.Size > maxAttachmentBytes {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "file too large", "attachments are limited to 10 MB")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to receive file", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Svc.AttachImage(c.Request.Context(), tmpPath)
	if err != nil {
		if errors.Is(err, journal.ErrAttachmentsDisabled) {
			utils.JSONError(c, http.StatusServiceUnavailable, "attachments disabled", "attachment storage is not configured")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "failed to upload attachment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// List returns the user's entries, newest first.
func (h *JournalHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	entries, err := h.Svc.ListEntries(c.Request.Context(), userID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get returns one entry.
func (h *JournalHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	entryID := c.Param("entryID")

	entry, err := h.Svc.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "entry not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes one entry.
func (h *JournalHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	entryID := c.Param("entryID")

	if err := h.Svc.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "entry not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
