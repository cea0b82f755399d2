// Package notification contains the outbound notification transport.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"clinica/config"
	"clinica/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookNotifier posts notification envelopes to the clinic's messaging
// gateway as JSON. Rendering the message is the gateway's job; the envelope
// carries the kind plus template context only.
type webhookNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates the synchronous transport. Most callers want the
// async dispatcher from NewAsyncDispatcher instead.
func NewWebhookNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	return &webhookNotifier{
		endpoint: cfg.Notifier.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Notifier.Timeout,
		},
		logger: logger,
	}
}

// Send posts one notification and fails on any non-2xx response.
func (n *webhookNotifier) Send(ctx context.Context, notification *service.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("notification gateway returned status %d", resp.StatusCode)
	}

	return nil
}
