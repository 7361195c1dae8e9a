// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"
)

// NotificationRepository defines write access to notification records.
type NotificationRepository interface {
	// Create persists a new notification record. The store assigns the
	// document ID and the creation timestamp; IsRead starts false.
	Create(ctx context.Context, record *entity.NotificationRecord) error
}
