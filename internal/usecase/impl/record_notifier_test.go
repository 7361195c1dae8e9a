package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRecordNotifier(t *testing.T) (
	usecase.RecordUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewRecordNotifier(logger, userRepo, pushSvc)

	return service, userRepo, pushSvc
}

func TestRecordNotifier_FollowRequest_Dispatched(t *testing.T) {
	service, userRepo, pushSvc := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{
		ID:            "n1",
		UserID:        "B",
		Type:          entity.NotificationTypeFollowRequest,
		RelatedUserID: "A",
	}

	userRepo.EXPECT().FindByID(ctx, "B").
		Return(&entity.User{ID: "B", FCMTokens: []string{"tok-b"}}, nil)
	userRepo.EXPECT().FindByID(ctx, "A").
		Return(&entity.User{ID: "A", DisplayName: "Ali"}, nil)

	pushSvc.EXPECT().Send(ctx, []string{"tok-b"}, mock.Anything).
		Run(func(_ context.Context, _ []string, payload *entity.DispatchPayload) {
			assert.Equal(t, "Yeni Takip İsteği", payload.Title)
			assert.Equal(t, "Ali size takip isteği gönderdi", payload.Body)
			assert.Equal(t, "n1", payload.Data["notificationId"])
			assert.Equal(t, "A", payload.Data["relatedUserId"])
		}).
		Return(1, nil)

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_FollowAccepted_Dispatched(t *testing.T) {
	service, userRepo, pushSvc := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{
		ID:            "n2",
		UserID:        "A",
		Type:          entity.NotificationTypeFollowRequestAccepted,
		RelatedUserID: "B",
	}

	userRepo.EXPECT().FindByID(ctx, "A").
		Return(&entity.User{ID: "A", FCMTokens: []string{"tok-a"}}, nil)
	userRepo.EXPECT().FindByID(ctx, "B").
		Return(&entity.User{ID: "B", DisplayName: "Banu"}, nil)

	pushSvc.EXPECT().Send(ctx, []string{"tok-a"}, mock.Anything).
		Run(func(_ context.Context, _ []string, payload *entity.DispatchPayload) {
			assert.Equal(t, "Takip İsteği Kabul Edildi", payload.Title)
			assert.Equal(t, "Banu takip isteğinizi kabul etti", payload.Body)
		}).
		Return(1, nil)

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_RelatedUserMissing_FallbackName(t *testing.T) {
	service, userRepo, pushSvc := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{
		ID:            "n3",
		UserID:        "B",
		Type:          entity.NotificationTypeMessageRequest,
		RelatedUserID: "ghost",
	}

	userRepo.EXPECT().FindByID(ctx, "B").
		Return(&entity.User{ID: "B", FCMTokens: []string{"tok-b"}}, nil)
	userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	pushSvc.EXPECT().Send(ctx, []string{"tok-b"}, mock.Anything).
		Run(func(_ context.Context, _ []string, payload *entity.DispatchPayload) {
			assert.Equal(t, "Birisi size mesaj isteği gönderdi", payload.Body)
		}).
		Return(1, nil)

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_UnhandledType_Ignored(t *testing.T) {
	service, _, _ := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{ID: "n4", UserID: "B", Type: "weekly_digest"}

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_MissingRecipientField_Ignored(t *testing.T) {
	service, _, _ := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{ID: "n5", Type: entity.NotificationTypeFollowRequest}

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_RecipientNotFound_Ignored(t *testing.T) {
	service, userRepo, _ := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{ID: "n6", UserID: "gone", Type: entity.NotificationTypeFollowRequest}

	userRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrUserNotFound)

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_RecipientWithoutTokens_Ignored(t *testing.T) {
	service, userRepo, _ := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{ID: "n7", UserID: "B", Type: entity.NotificationTypeFollowRequest}

	userRepo.EXPECT().FindByID(ctx, "B").Return(&entity.User{ID: "B"}, nil)

	require.NoError(t, service.NotifyRecordCreated(ctx, record))
}

func TestRecordNotifier_RecipientFetchFailure_Propagates(t *testing.T) {
	service, userRepo, _ := createTestRecordNotifier(t)

	ctx := context.Background()
	record := &entity.NotificationRecord{ID: "n8", UserID: "B", Type: entity.NotificationTypeFollowRequest}

	userRepo.EXPECT().FindByID(ctx, "B").Return(nil, errors.New("store unavailable"))

	require.Error(t, service.NotifyRecordCreated(ctx, record))
}
