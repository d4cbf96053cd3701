package notification

import (
	"context"
	"fmt"

	"homeserve/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Service is the side-channel notifier. Delivery is best effort: callers
// fire and forget, failures are logged and never block a core operation.
type Service interface {
	Push(ctx context.Context, pushToken, title, body string, data map[string]string) error
}

// DefaultNotificationService sends pushes through Firebase Cloud Messaging.
type DefaultNotificationService struct {
	Client *messaging.Client
}

// NewDefaultNotificationService wires the FCM client initialized at startup.
func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{Client: utils.FCMClient}
}

// Push sends one push notification to a device token.
func (s *DefaultNotificationService) Push(ctx context.Context, pushToken, title, body string, data map[string]string) error {
	if pushToken == "" {
		return fmt.Errorf("notification: empty push token")
	}
	if s.Client == nil {
		return fmt.Errorf("notification: messaging client not initialized")
	}

	msg := &messaging.Message{
		Token: pushToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.Client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("notification: failed to send push: %w", err)
	}
	utils.GetLogger().Debug("push notification sent", zap.String("messageID", id))
	return nil
}
