package handlers

import (
	"net/http"

	"serenemind/middleware"
	"serenemind/models"
	"serenemind/services/user"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profile management for the authenticated user.
type UserHandler struct {
	UserSvc user.UserService
}

func NewUserHandler(userSvc user.UserService) *UserHandler {
	return &UserHandler{UserSvc: userSvc}
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	u, err := h.UserSvc.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile applies mutable profile fields.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.ID = userID

	u, err := h.UserSvc.UpdateUser(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// SignOut revokes the current token.
func (h *UserHandler) SignOut(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.UserSvc.RevokeUserAuthToken(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// DeleteAccount removes the authenticated user's account.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.UserSvc.DeleteUser(userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
