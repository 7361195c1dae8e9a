// Package service defines capability interfaces provided by the infrastructure layer.
package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// PushService defines the interface for push notification delivery.
// It models the send capability only: callers hand over a token list and a
// payload and get back an aggregate success count. Per-token failures stay
// inside the delivery provider.
type PushService interface {
	// Send delivers the payload to every token in the list and returns the
	// number of tokens accepted by the provider. Implementations must treat
	// an empty token list as a no-op.
	Send(ctx context.Context, tokens []string, payload *entity.DispatchPayload) (successCount int, err error)
}
