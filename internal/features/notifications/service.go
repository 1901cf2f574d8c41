package notifications

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/opencivic/civicfix/internal/config"
)

// Service sends push notifications through Firebase Cloud Messaging.
// A nil Service (or one that failed to initialize) degrades to no-op:
// status updates must never fail because a push could not be sent.
type Service struct {
	client *messaging.Client
}

// NewService initializes the FCM client from the configured credentials
// file. When credentials are absent the service runs disabled.
func NewService(ctx context.Context, cfg *config.Config) *Service {
	if cfg.FirebaseCredentialsFile == "" {
		log.Println("notifications: no Firebase credentials configured, push disabled")
		return &Service{}
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	if err != nil {
		log.Printf("notifications: firebase init failed: %v", err)
		return &Service{}
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("notifications: messaging client failed: %v", err)
		return &Service{}
	}

	return &Service{client: client}
}

// Enabled reports whether push delivery is available
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// SendToDevice delivers a notification to a single device token.
// Failures are logged and swallowed.
func (s *Service) SendToDevice(ctx context.Context, deviceToken, title, body string, data map[string]string) {
	if !s.Enabled() || deviceToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		log.Printf("notifications: send failed: %v", err)
	}
}
