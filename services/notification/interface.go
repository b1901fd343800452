package notification

import (
	"context"

	userRepo "serenemind/database/repository/user"
)

// NotificationService delivers push notifications to users.
type NotificationService interface {
	SendToUser(ctx context.Context, userID, title, body string) error
}

// DefaultNotificationService sends via Firebase Cloud Messaging.
type DefaultNotificationService struct {
	UserRepo userRepo.UserRepository
}
