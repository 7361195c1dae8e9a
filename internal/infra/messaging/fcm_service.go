// Package messaging implements push delivery on Firebase Cloud Messaging.
package messaging

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase limits multicast sends to 500 tokens per request.
const multicastBatchSize = 500

type fcmService struct {
	client *messaging.Client
	logger *slog.Logger
}

// Params holds dependencies for the FCM service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFCMService creates the FCM-backed push delivery service.
func NewFCMService(params Params) (service.PushService, error) {
	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{
		client: client,
		logger: params.Logger,
	}, nil
}

// Send delivers the payload to every token, splitting into multicast batches.
// Per-token rejections only reduce the aggregate success count; a call-level
// failure aborts and propagates.
func (s *fcmService) Send(ctx context.Context, tokens []string, payload *entity.DispatchPayload) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	successCount := 0
	for start := 0; start < len(tokens); start += multicastBatchSize {
		end := min(start+multicastBatchSize, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: payload.Title,
				Body:  payload.Body,
			},
			Data: payload.Data,
			Android: &messaging.AndroidConfig{
				Notification: &messaging.AndroidNotification{
					ClickAction: payload.ClickAction,
				},
			},
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return successCount, errors.Wrap(err, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		if response.FailureCount > 0 {
			s.logger.Warn("Some tokens rejected by FCM",
				slog.Int("batch_size", len(batch)),
				slog.Int("failure_count", response.FailureCount),
			)
		}
	}

	s.logger.Info("Notifications sent",
		slog.Int("token_count", len(tokens)),
		slog.Int("success_count", successCount),
	)

	return successCount, nil
}
