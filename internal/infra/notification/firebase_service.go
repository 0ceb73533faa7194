// Package notification delivers push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"rangriti/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// noopNotificationService is used when Firebase is not configured.
type noopNotificationService struct {
	logger *slog.Logger
}

// NewNoopNotificationService logs notifications instead of sending them.
func NewNoopNotificationService(logger *slog.Logger) service.NotificationService {
	return &noopNotificationService{logger: logger}
}

func (s *noopNotificationService) SendSingleNotification(_ context.Context, token, title, _ string, _ map[string]string) error {
	s.logger.Debug("push notification skipped, Firebase not configured",
		slog.String("token", token),
		slog.String("title", title),
	)

	return nil
}
