package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// EditTextMessage replaces the text and inline keyboard of a message in place.
type EditTextMessage struct {
	ChatID                int64
	MessageID             int
	Text                  string
	ParseMode             ParseMode
	DisableWebPagePreview bool
	Keyboard              tgbotapi.InlineKeyboardMarkup
}

func (*EditTextMessage) Method() string { return "editMessageText" }

func (e *EditTextMessage) ToChatMessage() tgbotapi.Chattable {
	msg := tgbotapi.NewEditMessageTextAndMarkup(e.ChatID, e.MessageID, e.Text, e.Keyboard)
	msg.ParseMode = string(e.ParseMode)
	msg.DisableWebPagePreview = e.DisableWebPagePreview

	return msg
}
