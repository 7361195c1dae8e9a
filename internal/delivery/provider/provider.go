// Package provider selects the trigger delivery based on configuration.
package provider

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/subscriber"
	"beacon/internal/delivery/trigger"
	"beacon/internal/delivery/worker"
	"beacon/internal/delivery/worker/handler"
	"beacon/internal/domain/constants"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the trigger delivery, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Dispatcher  *trigger.Dispatcher
}

// NewTriggerDelivery creates the configured trigger delivery. The push
// endpoint is the default; a pull subscription is used when configured.
func NewTriggerDelivery(params Params) (delivery.Delivery, error) {
	cfg := params.Config.Trigger

	providerName := constants.TriggerProviderPush
	if cfg != nil && cfg.Provider != "" {
		providerName = cfg.Provider
	}

	switch providerName {
	case constants.TriggerProviderPush:
		params.Logger.Info("Using Pub/Sub push delivery")

		return worker.NewServer(params.Lc, params.Config, params.Logger, params.PushHandler)

	case constants.TriggerProviderPull:
		if cfg == nil || cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pull provider")
		}
		if cfg.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for pull provider")
		}
		params.Logger.Info("Using Pub/Sub pull delivery",
			slog.String("project_id", cfg.ProjectID),
			slog.String("subscription_id", cfg.SubscriptionID),
		)

		return subscriber.NewServer(params.Lc, params.Ctx, params.Config, params.Logger, params.Dispatcher)

	default:
		return nil, errors.Errorf("unknown trigger provider: %s", providerName)
	}
}
