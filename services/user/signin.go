package user

import (
	"fmt"
	"strings"

	"serenemind/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies the credentials and returns a fresh session.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// VerifyUserToken checks a presented token against the stored hash. A
// revoked or superseded token no longer matches.
func (s *DefaultUserService) VerifyUserToken(userID, token string) (bool, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec.TokenHash == "" {
		return false, nil
	}
	return userRec.TokenHash == utils.HashToken(token), nil
}

// RevokeUserAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
