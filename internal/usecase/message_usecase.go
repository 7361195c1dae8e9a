// Package usecase defines the application-layer interfaces driven by the trigger dispatcher.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// MessageUsecase reacts to newly created chat messages.
type MessageUsecase interface {
	// NotifyMessageCreated resolves the recipients of the message, partitions
	// their device tokens by the mutual-follow relation and dispatches a
	// direct-message push, a message-request push, or both. Business no-ops
	// (missing references, no recipients, no tokens) return nil; only
	// transport failures surface as errors.
	NotifyMessageCreated(ctx context.Context, msg *entity.Message) error
}
