package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

type showWelcomeMessage struct {
	client TelegramClient
}

func NewShowWelcomeMessage(client TelegramClient) *showWelcomeMessage {
	return &showWelcomeMessage{client: client}
}

func (*showWelcomeMessage) CanHandle(u *tgbotapi.Update) bool {
	if u.Message == nil {
		return false
	}
	cmd, ok := parseCommand(u.Message.Text)
	return ok && cmd == "start"
}

func (s *showWelcomeMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	err := s.client.Send(ctx, &domain.TextMessage{
		ChatID:      u.Message.Chat.ID,
		Text:        menu.WelcomeText,
		ParseMode:   domain.ParseModeHTML,
		ReplyMarkup: menu.ReplyKeyboard(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send welcome message", logger.Err(err))
	}
}
