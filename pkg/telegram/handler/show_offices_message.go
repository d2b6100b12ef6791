package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

type showOfficesMessage struct {
	client  TelegramClient
	offices []domain.Office
}

func NewShowOfficesMessage(client TelegramClient, offices []domain.Office) *showOfficesMessage {
	return &showOfficesMessage{
		client:  client,
		offices: offices,
	}
}

func (*showOfficesMessage) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && menu.IsOfficesLabel(u.Message.Text)
}

// Handle sends one venue per office. A failed venue does not stop the rest.
func (s *showOfficesMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	for _, office := range s.offices {
		err := s.client.Send(ctx, &domain.VenueMessage{
			ChatID: u.Message.Chat.ID,
			Office: office,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to send office venue", "office", office.Title, logger.Err(err))
		}
	}
}
