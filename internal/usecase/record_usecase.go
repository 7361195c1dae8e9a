package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// RecordUsecase reacts to newly created notification records.
type RecordUsecase interface {
	// NotifyRecordCreated pushes the record to its recipient's devices.
	// Records with an unhandled type or without a recipient are dropped.
	NotifyRecordCreated(ctx context.Context, record *entity.NotificationRecord) error
}
