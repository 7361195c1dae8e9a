package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// EventUsecase reacts to newly created event documents.
type EventUsecase interface {
	// NotifyEventCreated broadcasts the event to every registered device.
	NotifyEventCreated(ctx context.Context, event *entity.Event) error
}
