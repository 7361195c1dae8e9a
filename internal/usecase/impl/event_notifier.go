package impl

import (
	"context"
	"fmt"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"
)

const (
	eventTitleFallback = "Yeni Etkinlik"

	// Event broadcasts carry only a leading slice of the description.
	eventBodyRunes = 60
)

type eventNotifier struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	pushSvc  service.PushService
}

// NewEventNotifier creates the event broadcast mapper.
func NewEventNotifier(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pushSvc service.PushService,
) usecase.EventUsecase {
	return &eventNotifier{
		logger:   logger,
		userRepo: userRepo,
		pushSvc:  pushSvc,
	}
}

// NotifyEventCreated collects every registered device token and broadcasts the
// event. There is no targeting: the scan covers the whole users collection.
func (s *eventNotifier) NotifyEventCreated(ctx context.Context, event *entity.Event) error {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var tokens []string
	for _, user := range users {
		for _, token := range user.FCMTokens {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		s.logger.Info("No tokens found for event broadcast", slog.String("event_id", event.ID))

		return nil
	}

	title := event.Title
	if title == "" {
		title = eventTitleFallback
	}

	body := []rune(event.Description)
	if len(body) > eventBodyRunes {
		body = body[:eventBodyRunes]
	}

	payload := &entity.DispatchPayload{
		Title:       fmt.Sprintf("Yeni Etkinlik: %s", title),
		Body:        string(body),
		ClickAction: clickAction,
		Data: map[string]string{
			"eventId": event.ID,
		},
	}

	successCount, err := s.pushSvc.Send(ctx, tokens, payload)
	if err != nil {
		return err
	}

	s.logger.Info("Event broadcast sent",
		slog.String("event_id", event.ID),
		slog.Int("token_count", len(tokens)),
		slog.Int("success_count", successCount),
	)

	return nil
}
