package impl

import (
	"context"
	"fmt"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
)

// recordCopy maps handled record types to their push copy. The body template
// takes the related user's display name.
var recordCopy = map[string]struct {
	title      string
	bodyFormat string
}{
	entity.NotificationTypeFollowRequest:         {"Yeni Takip İsteği", "%s size takip isteği gönderdi"},
	entity.NotificationTypeFollowRequestAccepted: {"Takip İsteği Kabul Edildi", "%s takip isteğinizi kabul etti"},
	entity.NotificationTypeMessageRequest:        {"Yeni Mesaj İsteği", "%s size mesaj isteği gönderdi"},
}

type recordNotifier struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	pushSvc  service.PushService
}

// NewRecordNotifier creates the notification record mapper.
func NewRecordNotifier(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pushSvc service.PushService,
) usecase.RecordUsecase {
	return &recordNotifier{
		logger:   logger,
		userRepo: userRepo,
		pushSvc:  pushSvc,
	}
}

// NotifyRecordCreated pushes a freshly created notification record to the
// recipient's devices. Unhandled types and records without a recipient are
// dropped without error.
func (s *recordNotifier) NotifyRecordCreated(ctx context.Context, record *entity.NotificationRecord) error {
	copySpec, handled := recordCopy[record.Type]
	if !handled || record.UserID == "" {
		s.logger.Debug("Ignoring notification record",
			slog.String("record_id", record.ID),
			slog.String("type", record.Type),
		)

		return nil
	}

	user, err := s.userRepo.FindByID(ctx, record.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Warn("Record recipient not found",
			slog.String("record_id", record.ID),
			slog.String("user_id", record.UserID),
		)

		return nil
	}
	if err != nil {
		return err
	}

	if len(user.FCMTokens) == 0 {
		return nil
	}

	relatedName := senderNameFallback
	if record.RelatedUserID != "" {
		related, err := s.userRepo.FindByID(ctx, record.RelatedUserID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		if related != nil && related.DisplayName != "" {
			relatedName = related.DisplayName
		}
	}

	payload := &entity.DispatchPayload{
		Title:       copySpec.title,
		Body:        fmt.Sprintf(copySpec.bodyFormat, relatedName),
		ClickAction: clickAction,
		Data: map[string]string{
			"notificationId": record.ID,
			"type":           record.Type,
			"relatedUserId":  record.RelatedUserID,
		},
	}

	successCount, err := s.pushSvc.Send(ctx, user.FCMTokens, payload)
	if err != nil {
		return err
	}

	s.logger.Info("Record notification sent",
		slog.String("record_id", record.ID),
		slog.String("type", record.Type),
		slog.Int("success_count", successCount),
	)

	return nil
}
