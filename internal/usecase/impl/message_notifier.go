package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
)

const (
	// senderNameFallback stands in for "Someone" when the sender has no display name.
	senderNameFallback = "Birisi"

	directTitleFallback  = "Yeni Mesaj"
	voiceBodyPlaceholder = "🎤 Sesli mesaj"
	requestTitle         = "Mesaj İsteği"

	clickAction = "FLUTTER_NOTIFICATION_CLICK"

	// Message text longer than maxBodyRunes is cut to truncatedBodyRunes
	// runes plus a single ellipsis.
	maxBodyRunes       = 80
	truncatedBodyRunes = 77
)

type messageNotifier struct {
	logger           *slog.Logger
	userRepo         repository.UserRepository
	chatRepo         repository.ChatRepository
	notificationRepo repository.NotificationRepository
	pushSvc          service.PushService
}

// NewMessageNotifier creates the message recipient resolver.
func NewMessageNotifier(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	chatRepo repository.ChatRepository,
	notificationRepo repository.NotificationRepository,
	pushSvc service.PushService,
) usecase.MessageUsecase {
	return &messageNotifier{
		logger:           logger,
		userRepo:         userRepo,
		chatRepo:         chatRepo,
		notificationRepo: notificationRepo,
		pushSvc:          pushSvc,
	}
}

// recipientResult is the per-recipient outcome, filled in by an independent
// goroutine and merged only after the join so no collection is shared while
// the fetches run.
type recipientResult struct {
	tokens []string
	mutual bool
	err    error
}

// NotifyMessageCreated implements the recipient resolution and dispatch gating
// for a newly created message.
//
// Recipients are the chat participants minus the sender. Each recipient's
// tokens land in the direct set when sender and recipient follow each other,
// otherwise in the request set together with one message_request record. The
// two sets are disjoint per message because every recipient is classified
// exactly once. Dispatch happens only after all per-recipient work completed.
func (s *messageNotifier) NotifyMessageCreated(ctx context.Context, msg *entity.Message) error {
	if msg.ChatID == "" || msg.SenderID == "" {
		s.logger.Warn("Message missing chatId or senderId, skipping",
			slog.String("message_id", msg.ID),
		)

		return nil
	}

	chat, err := s.chatRepo.FindByID(ctx, msg.ChatID)
	if errors.Is(err, repository.ErrChatNotFound) {
		s.logger.Warn("Chat not found, skipping message",
			slog.String("chat_id", msg.ChatID),
			slog.String("message_id", msg.ID),
		)

		return nil
	}
	if err != nil {
		return err
	}

	recipients := chat.RecipientsOf(msg.SenderID)
	if len(recipients) == 0 {
		s.logger.Info("No recipients for message", slog.String("chat_id", msg.ChatID))

		return nil
	}

	sender, err := s.userRepo.FindByID(ctx, msg.SenderID)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Warn("Sender not found, skipping message",
			slog.String("sender_id", msg.SenderID),
			slog.String("message_id", msg.ID),
		)

		return nil
	}
	if err != nil {
		return err
	}

	senderName := sender.DisplayName
	if senderName == "" {
		senderName = senderNameFallback
	}

	// Resolve every recipient concurrently, one result slot per recipient.
	results := make([]recipientResult, len(recipients))
	var wg sync.WaitGroup
	for idx, recipientID := range recipients {
		wg.Add(1)
		go func(idx int, recipientID string) {
			defer wg.Done()
			results[idx] = s.resolveRecipient(ctx, msg, sender, senderName, recipientID)
		}(idx, recipientID)
	}
	wg.Wait()

	// Deterministic merge in recipient order.
	var directTokens, requestTokens []string
	for _, result := range results {
		if result.err != nil {
			return result.err
		}
		if len(result.tokens) == 0 {
			continue
		}
		if result.mutual {
			directTokens = append(directTokens, result.tokens...)
		} else {
			requestTokens = append(requestTokens, result.tokens...)
		}
	}

	if len(directTokens) > 0 {
		if _, err := s.pushSvc.Send(ctx, directTokens, s.directPayload(chat, msg)); err != nil {
			return err
		}
	}

	if len(requestTokens) > 0 {
		if _, err := s.pushSvc.Send(ctx, requestTokens, s.requestPayload(senderName, msg)); err != nil {
			return err
		}
	}

	return nil
}

// resolveRecipient fetches one recipient and classifies their tokens. A
// non-mutual recipient additionally gets a message_request record, created
// before the join barrier releases.
func (s *messageNotifier) resolveRecipient(ctx context.Context, msg *entity.Message, sender *entity.User, senderName, recipientID string) recipientResult {
	recipient, err := s.userRepo.FindByID(ctx, recipientID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return recipientResult{}
	}
	if err != nil {
		return recipientResult{err: err}
	}

	if len(recipient.FCMTokens) == 0 {
		return recipientResult{}
	}

	if sender.Follows(recipientID) && recipient.Follows(msg.SenderID) {
		return recipientResult{tokens: recipient.FCMTokens, mutual: true}
	}

	record := &entity.NotificationRecord{
		UserID:        recipientID,
		Type:          entity.NotificationTypeMessageRequest,
		RelatedUserID: msg.SenderID,
		RelatedChatID: msg.ChatID,
		Title:         requestTitle,
		Body:          fmt.Sprintf("%s size mesaj göndermek istiyor", senderName),
	}
	if err := s.notificationRepo.Create(ctx, record); err != nil {
		return recipientResult{err: err}
	}

	return recipientResult{tokens: recipient.FCMTokens}
}

func (s *messageNotifier) directPayload(chat *entity.Chat, msg *entity.Message) *entity.DispatchPayload {
	title := chat.Name
	if title == "" {
		title = directTitleFallback
	}

	body := truncateBody(msg.Text)
	if msg.Type == entity.MessageTypeVoice && msg.Text == "" {
		body = voiceBodyPlaceholder
	}

	return &entity.DispatchPayload{
		Title:       title,
		Body:        body,
		ClickAction: clickAction,
		Data: map[string]string{
			"chatId":    msg.ChatID,
			"messageId": msg.ID,
			"senderId":  msg.SenderID,
		},
	}
}

func (s *messageNotifier) requestPayload(senderName string, msg *entity.Message) *entity.DispatchPayload {
	return &entity.DispatchPayload{
		Title:       requestTitle,
		Body:        fmt.Sprintf("%s size mesaj göndermek istiyor", senderName),
		ClickAction: clickAction,
		Data: map[string]string{
			"chatId":   msg.ChatID,
			"senderId": msg.SenderID,
			"type":     entity.NotificationTypeMessageRequest,
		},
	}
}

// truncateBody cuts text longer than maxBodyRunes down to truncatedBodyRunes
// runes plus one ellipsis character. Shorter text passes through unchanged.
func truncateBody(text string) string {
	runes := []rune(text)
	if len(runes) <= maxBodyRunes {
		return text
	}

	return string(runes[:truncatedBodyRunes]) + "…"
}
