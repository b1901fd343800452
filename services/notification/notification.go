package notification

import (
	"context"
	"fmt"

	"serenemind/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// SendToUser delivers a push notification to the user's registered device.
// Users without a registered FCM token are silently skipped.
func (s *DefaultNotificationService) SendToUser(ctx context.Context, userID, title, body string) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("SendToUser: push notifications disabled")
		return nil
	}

	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		utils.GetLogger().Debug("SendToUser: user has no FCM token", zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push to user %s: %w", userID, err)
	}
	return nil
}
