package user

import (
	"fmt"
	"strings"

	"serenemind/models"
)

// GetUserByID retrieves a user profile.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// UpdateUser applies the mutable profile fields.
func (s *DefaultUserService) UpdateUser(req models.UserUpdateRequest) (*models.User, error) {
	u, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			return nil, ValidationError{Field: "fullName", Reason: "must not be blank"}
		}
		u.FullName = name
	}
	if req.GuardianEmail != nil {
		u.GuardianEmail = strings.TrimSpace(*req.GuardianEmail)
	}
	if req.FCMToken != nil {
		u.FCMToken = *req.FCMToken
	}

	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
