package telegram

import (
	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/telegram/handler"
)

// NewMenuRegistry wires the menu handlers. Order matters: commands are matched before
// keyboard labels, and the fallback goes last among message handlers.
func NewMenuRegistry(client handler.TelegramClient, offices []domain.Office) *Registry {
	return NewRegistry(
		handler.NewShowTopicCallback(client),
		handler.NewShowMainMenuCallback(client),

		handler.NewShowWelcomeMessage(client),
		handler.NewIgnoreCommandMessage(),
		handler.NewShowTopicMessage(client),
		handler.NewShowOfficesMessage(client, offices),
		handler.NewShowFallbackMessage(client),
	)
}
