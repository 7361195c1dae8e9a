package firestore

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository creates a Firestore-backed notification repository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// Create persists a new notification record. Firestore assigns the document ID
// and the server timestamp; the resulting document-created trigger runs the
// secondary push-dispatch pass.
func (r *notificationRepository) Create(ctx context.Context, record *entity.NotificationRecord) error {
	fields := map[string]any{
		"userId":    record.UserID,
		"type":      record.Type,
		"title":     record.Title,
		"body":      record.Body,
		"isRead":    false,
		"createdAt": firestore.ServerTimestamp,
	}
	if record.RelatedUserID != "" {
		fields["relatedUserId"] = record.RelatedUserID
	}
	if record.RelatedChatID != "" {
		fields["relatedChatId"] = record.RelatedChatID
	}

	if _, _, err := r.client.Collection(notificationsCollection).Add(ctx, fields); err != nil {
		return errors.Wrap(err, "failed to create notification record")
	}

	return nil
}
