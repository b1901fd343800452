package user

import (
	userRepo "serenemind/database/repository/user"
	"serenemind/models"
)

// UserService defines account operations.
type UserService interface {
	// Registration / authentication
	RegisterUser(data models.UserRegistrationData) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)

	// User management
	GetUserByID(userID string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error
	RevokeUserAuthToken(userID string) error

	// VerifyUserToken checks a presented token against the stored hash.
	VerifyUserToken(userID, token string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
