// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user document does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their document ID.
	// Absent or malformed list fields decode as empty, never as an error.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ListAll streams every user document. Used by the event broadcast,
	// which targets all registered devices.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
