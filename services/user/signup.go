package user

import (
	"fmt"
	"strings"
	"time"

	"serenemind/models"
	"serenemind/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new account and returns an authenticated session.
func (s *DefaultUserService) RegisterUser(data models.UserRegistrationData) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	if err := validateRegistration(data.FullName, email, data.Password, data.BirthDate, time.Now()); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:            uuid.New().String(),
		FullName:      strings.TrimSpace(data.FullName),
		Email:         email,
		PasswordHash:  string(hash),
		BirthDate:     data.BirthDate,
		GuardianEmail: strings.TrimSpace(data.GuardianEmail),
	}

	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(newUser)
}

// issueToken generates a JWT for the user and stores its hash for
// revocation checks.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(u.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	return &AuthResponse{
		ID:       u.ID,
		Token:    token,
		FullName: u.FullName,
		Email:    u.Email,
	}, nil
}
