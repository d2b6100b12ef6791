package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

// showFallbackMessage must be registered after every other message handler.
type showFallbackMessage struct {
	client TelegramClient
}

func NewShowFallbackMessage(client TelegramClient) *showFallbackMessage {
	return &showFallbackMessage{client: client}
}

func (*showFallbackMessage) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil
}

func (s *showFallbackMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	err := s.client.Send(ctx, &domain.TextMessage{
		ChatID:      u.Message.Chat.ID,
		Text:        menu.FallbackText,
		ReplyMarkup: menu.ReplyKeyboard(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send fallback message", logger.Err(err))
	}
}
