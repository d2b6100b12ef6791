package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// CallbackMessage answers a callback query so the client stops its loading indicator.
type CallbackMessage struct {
	ID string
}

func (*CallbackMessage) Method() string { return "answerCallbackQuery" }

func (c *CallbackMessage) ToChatMessage() tgbotapi.Chattable {
	return tgbotapi.NewCallback(c.ID, "")
}
