package api

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"

	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/metrics"
)

const maxUpdateSize = 1 << 20

// Webhook receives updates pushed by Telegram. It always answers 200 with an empty body,
// otherwise Telegram keeps redelivering the same update.
type Webhook struct {
	token   string
	forward bool
	updates chan tgbotapi.Update
}

// NewWebhook creates a receiver. With forward set, decoded updates are queued for Updates;
// otherwise payloads are only logged, which is the case while the bot long-polls.
func NewWebhook(token string, forward bool, queueSize int) *Webhook {
	return &Webhook{
		token:   token,
		forward: forward,
		updates: make(chan tgbotapi.Update, max(queueSize, 1)),
	}
}

func (w *Webhook) Updates() tgbotapi.UpdatesChannel {
	return w.updates
}

// Stop is a no-op: the HTTP server owns the receiver's lifetime.
func (w *Webhook) Stop() {}

func (w *Webhook) Handle(c echo.Context) error {
	if subtle.ConstantTimeCompare([]byte(c.Param("token")), []byte(w.token)) != 1 {
		return echo.ErrNotFound
	}

	ctx := c.Request().Context()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxUpdateSize))
	if err != nil {
		metrics.WebhookRequestsTotal.WithLabelValues("malformed").Inc()
		slog.WarnContext(ctx, "Failed to read webhook body", logger.Err(err))
		return c.NoContent(http.StatusOK)
	}

	if !w.forward {
		metrics.WebhookRequestsTotal.WithLabelValues("logged").Inc()
		slog.DebugContext(ctx, "Received update", "body", string(body))
		return c.NoContent(http.StatusOK)
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		metrics.WebhookRequestsTotal.WithLabelValues("malformed").Inc()
		slog.WarnContext(ctx, "Malformed webhook update", logger.Err(err))
		return c.NoContent(http.StatusOK)
	}

	select {
	case w.updates <- update:
		metrics.WebhookRequestsTotal.WithLabelValues("queued").Inc()
	default:
		metrics.WebhookRequestsTotal.WithLabelValues("dropped").Inc()
		slog.WarnContext(ctx, "Update queue is full, dropping update", "updateID", update.UpdateID)
	}

	return c.NoContent(http.StatusOK)
}
