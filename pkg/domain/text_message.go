package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type TextMessage struct {
	ChatID                int64
	Text                  string
	ParseMode             ParseMode
	DisableWebPagePreview bool
	// ReplyMarkup is a tgbotapi.ReplyKeyboardMarkup or tgbotapi.InlineKeyboardMarkup.
	ReplyMarkup any
}

func (*TextMessage) Method() string { return "sendMessage" }

func (t *TextMessage) ToChatMessage() tgbotapi.Chattable {
	msg := tgbotapi.NewMessage(t.ChatID, t.Text)
	msg.ParseMode = string(t.ParseMode)
	msg.DisableWebPagePreview = t.DisableWebPagePreview
	msg.ReplyMarkup = t.ReplyMarkup

	return msg
}
