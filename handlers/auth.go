package handlers

import (
	"errors"
	"net/http"

	"serenemind/models"
	"serenemind/services/user"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and sign-in.
type AuthHandler struct {
	UserSvc user.UserService
}

func NewAuthHandler(userSvc user.UserService) *AuthHandler {
	return &AuthHandler{UserSvc: userSvc}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.UserRegistrationData
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.UserSvc.RegisterUser(input)
	if err != nil {
		var vErr user.ValidationError
		var dupErr user.DuplicateEmailError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.As(err, &dupErr):
			utils.JSONError(c, http.StatusConflict, "email already registered", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates an existing account.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.UserSvc.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
