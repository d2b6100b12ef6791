package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

type showMainMenuCallback struct {
	client TelegramClient
}

func NewShowMainMenuCallback(client TelegramClient) *showMainMenuCallback {
	return &showMainMenuCallback{client: client}
}

func (*showMainMenuCallback) CanHandle(u *tgbotapi.Update) bool {
	return u.CallbackQuery != nil &&
		u.CallbackQuery.Message != nil &&
		u.CallbackQuery.Data == domain.MainMenuCallback
}

func (s *showMainMenuCallback) Handle(ctx context.Context, u *tgbotapi.Update) {
	msg := u.CallbackQuery.Message
	err := s.client.Send(ctx, &domain.EditTextMessage{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		Text:      menu.WelcomeText,
		ParseMode: domain.ParseModeHTML,
		Keyboard:  menu.MainMenuKeyboard(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to show main menu", logger.Err(err))
	}
}
