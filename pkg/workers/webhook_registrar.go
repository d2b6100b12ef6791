package workers

import (
	"context"
	"log/slog"

	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
)

type WebhookClient interface {
	SetWebhook(webhookURL string) error
	DeleteWebhook() error
}

// webhookRegistrar is a best-effort startup task. It runs once and never fails the group.
type webhookRegistrar struct {
	client     WebhookClient
	webhookURL string
}

// NewWebhookRegistrar registers webhookURL with Telegram at startup (UPDATE_MODE=webhook).
//
// With an empty webhookURL (UPDATE_MODE=polling) it deletes any webhook registered earlier
// instead of registering one: Telegram answers getUpdates with 409 Conflict while a webhook
// is set, so a leftover registration would leave the polling bot without updates.
// Either way failures are logged and startup continues.
func NewWebhookRegistrar(client WebhookClient, webhookURL string) *webhookRegistrar {
	return &webhookRegistrar{
		client:     client,
		webhookURL: webhookURL,
	}
}

func (w *webhookRegistrar) Name() string { return "webhook_registrar" }

func (w *webhookRegistrar) Start(ctx context.Context) error {
	if w.webhookURL == "" {
		if err := w.client.DeleteWebhook(); err != nil {
			slog.ErrorContext(ctx, "Error removing webhook", logger.Err(err))
			return nil
		}
		slog.InfoContext(ctx, "Webhook removed, using long polling")
		return nil
	}

	if err := w.client.SetWebhook(w.webhookURL); err != nil {
		slog.ErrorContext(ctx, "Error setting up webhook", logger.Err(err))
		return nil
	}
	slog.InfoContext(ctx, "Webhook set up")
	return nil
}
