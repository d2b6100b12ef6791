package handler

import (
	"context"
	"errors"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
)

type fakeClient struct {
	mu     sync.Mutex
	sent   []domain.Message
	failOn map[int]error
}

func (f *fakeClient) Send(_ context.Context, message domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, message)
	return f.failOn[len(f.sent)]
}

func textUpdate(chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 100,
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
		},
	}
}

func callbackUpdate(chatID int64, messageID int, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			Data: data,
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: chatID},
			},
		},
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		expected string
		ok       bool
	}{
		{"/start", "start", true},
		{"/START", "start", true},
		{"/start@antares_bot", "start", true},
		{"/start payload", "start", true},
		{"  /start payload", "", false},
		{" /foo", "", false},
		{"/help", "help", true},
		{"/", "", true},
		{"start", "", false},
		{"hello /start", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		cmd, ok := parseCommand(test.text)
		assert.Equal(t, test.ok, ok, test.text)
		assert.Equal(t, test.expected, cmd, test.text)
	}
}

func TestShowWelcomeMessage(t *testing.T) {
	client := &fakeClient{}
	h := NewShowWelcomeMessage(client)

	u := textUpdate(42, "/start")
	require.True(t, h.CanHandle(u))
	assert.False(t, h.CanHandle(textUpdate(42, "/help")))
	assert.False(t, h.CanHandle(textUpdate(42, " /start")))
	assert.False(t, h.CanHandle(callbackUpdate(42, 1, "about")))

	h.Handle(context.Background(), u)

	require.Len(t, client.sent, 1)
	msg, ok := client.sent[0].(*domain.TextMessage)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, menu.WelcomeText, msg.Text)
	assert.Equal(t, domain.ParseModeHTML, msg.ParseMode)
	assert.Equal(t, menu.ReplyKeyboard(), msg.ReplyMarkup)
	_, inline := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.False(t, inline)
}

func TestIgnoreCommandMessage(t *testing.T) {
	h := NewIgnoreCommandMessage()

	assert.True(t, h.CanHandle(textUpdate(1, "/help")))
	assert.False(t, h.CanHandle(textUpdate(1, "help")))
	assert.False(t, h.CanHandle(textUpdate(1, " /foo")))
	assert.False(t, h.CanHandle(callbackUpdate(1, 1, "/about")))

	h.Handle(context.Background(), textUpdate(1, "/help"))
}

func TestShowTopicMessage(t *testing.T) {
	tests := []struct {
		label string
		topic domain.Topic
	}{
		{"🏢 О компании", domain.TopicAbout},
		{"🛠 Специализации", domain.TopicSpecialization},
		{"🏗 Проекты", domain.TopicProjects},
		{"📞 Контакты", domain.TopicContact},
	}

	for _, test := range tests {
		t.Run(test.topic.String(), func(t *testing.T) {
			client := &fakeClient{}
			h := NewShowTopicMessage(client)
			u := textUpdate(7, test.label)
			require.True(t, h.CanHandle(u))

			h.Handle(context.Background(), u)

			entry, _ := menu.Lookup(test.topic)
			require.Len(t, client.sent, 1)
			assert.Equal(t, &domain.TextMessage{
				ChatID:                7,
				Text:                  entry.Text,
				ParseMode:             domain.ParseModeHTML,
				DisableWebPagePreview: entry.DisableWebPagePreview,
				ReplyMarkup:           menu.ReplyKeyboard(),
			}, client.sent[0])
		})
	}

	h := NewShowTopicMessage(&fakeClient{})
	assert.False(t, h.CanHandle(textUpdate(7, menu.OfficesLabel)))
	assert.False(t, h.CanHandle(textUpdate(7, "🏢 О компании ")))
}

func TestShowOfficesMessage(t *testing.T) {
	offices := []domain.Office{
		{Title: "HQ", Address: "street 1", Latitude: 43.1, Longitude: 76.1},
		{Title: "Branch", Address: "street 2", Latitude: 51.1, Longitude: 71.4},
	}
	client := &fakeClient{}
	h := NewShowOfficesMessage(client, offices)

	u := textUpdate(9, menu.OfficesLabel)
	require.True(t, h.CanHandle(u))
	h.Handle(context.Background(), u)

	require.Len(t, client.sent, 2)
	for i, office := range offices {
		assert.Equal(t, &domain.VenueMessage{ChatID: 9, Office: office}, client.sent[i])
	}
}

func TestShowOfficesMessageContinuesAfterFailure(t *testing.T) {
	offices := []domain.Office{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	client := &fakeClient{failOn: map[int]error{1: errors.New("network down")}}
	h := NewShowOfficesMessage(client, offices)

	h.Handle(context.Background(), textUpdate(9, menu.OfficesLabel))

	assert.Len(t, client.sent, 3)
}

func TestShowFallbackMessage(t *testing.T) {
	client := &fakeClient{}
	h := NewShowFallbackMessage(client)

	u := textUpdate(3, "what is this?")
	require.True(t, h.CanHandle(u))
	assert.False(t, h.CanHandle(callbackUpdate(3, 1, "x")))

	h.Handle(context.Background(), u)

	require.Len(t, client.sent, 1)
	assert.Equal(t, &domain.TextMessage{
		ChatID:      3,
		Text:        menu.FallbackText,
		ReplyMarkup: menu.ReplyKeyboard(),
	}, client.sent[0])
}

func TestShowTopicCallback(t *testing.T) {
	for _, topic := range domain.Topics() {
		t.Run(topic.String(), func(t *testing.T) {
			client := &fakeClient{}
			h := NewShowTopicCallback(client)
			u := callbackUpdate(5, 77, topic.CallbackData())
			require.True(t, h.CanHandle(u))

			h.Handle(context.Background(), u)

			entry, _ := menu.Lookup(topic)
			require.Len(t, client.sent, 1)
			assert.Equal(t, &domain.EditTextMessage{
				ChatID:                5,
				MessageID:             77,
				Text:                  entry.Text,
				ParseMode:             domain.ParseModeHTML,
				DisableWebPagePreview: entry.DisableWebPagePreview,
				Keyboard:              menu.BackToMainMenuKeyboard(),
			}, client.sent[0])
		})
	}
}

func TestShowTopicCallbackRejects(t *testing.T) {
	h := NewShowTopicCallback(&fakeClient{})

	assert.False(t, h.CanHandle(callbackUpdate(5, 1, domain.MainMenuCallback)))
	assert.False(t, h.CanHandle(callbackUpdate(5, 1, "offices")))
	assert.False(t, h.CanHandle(textUpdate(5, "about")))

	inline := callbackUpdate(5, 1, "about")
	inline.CallbackQuery.Message = nil
	assert.False(t, h.CanHandle(inline))
}

func TestShowMainMenuCallback(t *testing.T) {
	client := &fakeClient{}
	h := NewShowMainMenuCallback(client)

	u := callbackUpdate(5, 77, domain.MainMenuCallback)
	require.True(t, h.CanHandle(u))
	assert.False(t, h.CanHandle(callbackUpdate(5, 77, "about")))

	h.Handle(context.Background(), u)

	require.Len(t, client.sent, 1)
	assert.Equal(t, &domain.EditTextMessage{
		ChatID:    5,
		MessageID: 77,
		Text:      menu.WelcomeText,
		ParseMode: domain.ParseModeHTML,
		Keyboard:  menu.MainMenuKeyboard(),
	}, client.sent[0])
}

func TestHandlersSurviveSendErrors(t *testing.T) {
	client := &fakeClient{failOn: map[int]error{1: errors.New("rate limited")}}

	assert.NotPanics(t, func() {
		NewShowWelcomeMessage(client).Handle(context.Background(), textUpdate(1, "/start"))
	})
	assert.Len(t, client.sent, 1)
}
