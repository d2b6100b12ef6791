package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Message is an outbound Telegram call.
type Message interface {
	// Method is the Bot API method the message is sent with.
	Method() string
	ToChatMessage() tgbotapi.Chattable
}
