package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type ParseMode string

const (
	ParseModeNone ParseMode = ""
	ParseModeHTML ParseMode = tgbotapi.ModeHTML
)
