package menu

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
)

const (
	OfficesLabel        = "📍 Офисы на карте"
	BackToMainMenuLabel = "🔙 Главное меню"
)

var inlineLabels = map[domain.Topic]string{
	domain.TopicAbout:          "🏢 О компании",
	domain.TopicSpecialization: "🛠 Специализации",
	domain.TopicProjects:       "🏗 Наши проекты",
	domain.TopicContact:        "📞 Контакты",
}

var replyLabels = map[domain.Topic]string{
	domain.TopicAbout:          "🏢 О компании",
	domain.TopicSpecialization: "🛠 Специализации",
	domain.TopicProjects:       "🏗 Проекты",
	domain.TopicContact:        "📞 Контакты",
}

// ReplyKeyboard is the persistent keyboard shown below the input field.
func ReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := [][]string{
		{replyLabels[domain.TopicAbout], replyLabels[domain.TopicSpecialization]},
		{replyLabels[domain.TopicProjects], OfficesLabel},
		{replyLabels[domain.TopicContact]},
	}

	keyboard := tgbotapi.NewReplyKeyboard(lo.Map(rows, func(row []string, _ int) []tgbotapi.KeyboardButton {
		return tgbotapi.NewKeyboardButtonRow(lo.Map(row, func(label string, _ int) tgbotapi.KeyboardButton {
			return tgbotapi.NewKeyboardButton(label)
		})...)
	})...)
	keyboard.OneTimeKeyboard = false

	return keyboard
}

// MainMenuKeyboard lists every topic, one per row.
func MainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(lo.Map(domain.Topics(), func(t domain.Topic, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(inlineLabels[t], t.CallbackData()))
	})...)
}

func BackToMainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(BackToMainMenuLabel, domain.MainMenuCallback),
		),
	)
}

// TopicForLabel resolves a reply keyboard label to its topic. The offices label is not a topic.
func TopicForLabel(label string) (domain.Topic, bool) {
	topic, ok := lo.FindKeyBy(replyLabels, func(_ domain.Topic, l string) bool {
		return l == label
	})
	return topic, ok
}

func IsOfficesLabel(label string) bool {
	return label == OfficesLabel
}
