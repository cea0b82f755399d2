package notification

import (
	"context"
	"log/slog"
	"time"

	"clinica/config"
	"clinica/internal/domain/service"
)

const dispatchTimeout = 45 * time.Second

// asyncDispatcher decorates a Notifier so that Send enqueues and returns
// immediately. The state change that triggered the notification is the source
// of truth; delivery is advisory, so the outcome is only logged and a failure
// never propagates back into the caller's transaction.
type asyncDispatcher struct {
	inner  service.Notifier
	logger *slog.Logger
}

// NewAsyncDispatcher builds the webhook transport and wraps it with
// fire-and-forget dispatch. This is the Notifier the rest of the system sees.
func NewAsyncDispatcher(cfg *config.Config, logger *slog.Logger) service.Notifier {
	return &asyncDispatcher{
		inner:  NewWebhookNotifier(cfg, logger),
		logger: logger,
	}
}

// newAsyncDispatcherWith wraps an arbitrary transport, for tests.
func newAsyncDispatcherWith(inner service.Notifier, logger *slog.Logger) service.Notifier {
	return &asyncDispatcher{
		inner:  inner,
		logger: logger,
	}
}

// Send never blocks on and never reports transport errors. The background send
// is detached from the request context: a committed cancellation must still
// produce its notice even if the triggering request ends first.
func (d *asyncDispatcher) Send(_ context.Context, notification *service.Notification) error {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := d.inner.Send(sendCtx, notification); err != nil {
			d.logger.Warn("Notification dispatch failed",
				slog.String("kind", string(notification.Kind)),
				slog.String("recipient", notification.Recipient),
				slog.Any("error", err),
			)

			return
		}

		d.logger.Debug("Notification dispatched",
			slog.String("kind", string(notification.Kind)),
			slog.String("recipient", notification.Recipient),
		)
	}()

	return nil
}
