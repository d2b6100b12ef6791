package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

// showTopicMessage answers a reply keyboard press with a new message.
type showTopicMessage struct {
	client TelegramClient
}

func NewShowTopicMessage(client TelegramClient) *showTopicMessage {
	return &showTopicMessage{client: client}
}

func (*showTopicMessage) CanHandle(u *tgbotapi.Update) bool {
	if u.Message == nil {
		return false
	}
	_, ok := menu.TopicForLabel(u.Message.Text)
	return ok
}

func (s *showTopicMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	topic, _ := menu.TopicForLabel(u.Message.Text)
	entry, ok := menu.Lookup(topic)
	if !ok {
		slog.ErrorContext(ctx, "No menu entry for topic", "topic", topic)
		return
	}

	err := s.client.Send(ctx, &domain.TextMessage{
		ChatID:                u.Message.Chat.ID,
		Text:                  entry.Text,
		ParseMode:             domain.ParseModeHTML,
		DisableWebPagePreview: entry.DisableWebPagePreview,
		ReplyMarkup:           menu.ReplyKeyboard(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to send topic", "topic", topic, logger.Err(err))
	}
}
