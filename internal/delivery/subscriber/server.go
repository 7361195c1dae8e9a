// Package subscriber consumes Firestore trigger events from a Pub/Sub pull subscription.
package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"

	"beacon/config"
	"beacon/internal/delivery"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/delivery/trigger"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriberServer struct {
	subscriptionID string
	logger         *slog.Logger
	client         *pubsub.Client
	dispatcher     *trigger.Dispatcher
	cancel         context.CancelFunc
}

// NewServer creates a pull-subscription delivery.
func NewServer(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger, dispatcher *trigger.Dispatcher) (delivery.Delivery, error) {
	client, err := pubsub.NewClient(ctx, cfg.Trigger.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv := &subscriberServer{
		subscriptionID: cfg.Trigger.SubscriptionID,
		logger:         logger,
		client:         client,
		dispatcher:     dispatcher,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks receiving messages until the context is canceled.
func (s *subscriberServer) Serve(ctx context.Context) error {
	recvCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.logger.Info("Starting Pub/Sub subscriber",
		slog.String("subscription_id", s.subscriptionID),
	)

	sub := s.client.Subscriber(s.subscriptionID)
	if err := sub.Receive(recvCtx, s.handle); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// handle processes one pulled message. Undecodable messages are acked so they
// do not loop forever; retryable dispatch failures are nacked for redelivery.
func (s *subscriberServer) handle(ctx context.Context, msg *pubsub.Message) {
	requestID := msg.Attributes["request_id"]
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	var event trigger.Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		reqLogger.Error("[Subscriber] Failed to parse trigger event", slog.Any("error", err))
		msg.Ack()

		return
	}

	if err := s.dispatcher.Dispatch(ctx, &event); err != nil {
		reqLogger.Error("[Subscriber] Failed to process trigger event",
			slog.String("document", event.Value.Name),
			slog.Any("error", err),
			slog.Bool("retryable", trigger.IsRetryable(err)),
		)
		if trigger.IsRetryable(err) {
			msg.Nack()

			return
		}
	}

	msg.Ack()
}

// stop cancels the receive loop and releases the Pub/Sub client.
func (s *subscriberServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down Pub/Sub subscriber")

	if s.cancel != nil {
		s.cancel()
	}

	return errors.WithStack(s.client.Close())
}
