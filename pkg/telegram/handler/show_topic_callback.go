package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

// showTopicCallback replaces the pressed inline menu message with the topic text.
type showTopicCallback struct {
	client TelegramClient
}

func NewShowTopicCallback(client TelegramClient) *showTopicCallback {
	return &showTopicCallback{client: client}
}

func (*showTopicCallback) CanHandle(u *tgbotapi.Update) bool {
	if u.CallbackQuery == nil || u.CallbackQuery.Message == nil {
		return false
	}
	_, ok := domain.ParseTopic(u.CallbackQuery.Data)
	return ok
}

func (s *showTopicCallback) Handle(ctx context.Context, u *tgbotapi.Update) {
	topic, _ := domain.ParseTopic(u.CallbackQuery.Data)
	entry, ok := menu.Lookup(topic)
	if !ok {
		slog.ErrorContext(ctx, "No menu entry for topic", "topic", topic)
		return
	}

	msg := u.CallbackQuery.Message
	err := s.client.Send(ctx, &domain.EditTextMessage{
		ChatID:                msg.Chat.ID,
		MessageID:             msg.MessageID,
		Text:                  entry.Text,
		ParseMode:             domain.ParseModeHTML,
		DisableWebPagePreview: entry.DisableWebPagePreview,
		Keyboard:              menu.BackToMainMenuKeyboard(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to show topic", "topic", topic, logger.Err(err))
	}
}
