// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"
)

// ErrChatNotFound is returned when a chat document does not exist.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines read access to chat documents.
type ChatRepository interface {
	// FindByID retrieves a single chat by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Chat, error)
}
