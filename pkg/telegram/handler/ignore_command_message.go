package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ignoreCommandMessage swallows commands nobody else handled, so they never reach the fallback.
type ignoreCommandMessage struct{}

func NewIgnoreCommandMessage() *ignoreCommandMessage {
	return &ignoreCommandMessage{}
}

func (*ignoreCommandMessage) CanHandle(u *tgbotapi.Update) bool {
	if u.Message == nil {
		return false
	}
	_, ok := parseCommand(u.Message.Text)
	return ok
}

func (*ignoreCommandMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	cmd, _ := parseCommand(u.Message.Text)
	slog.DebugContext(ctx, "Ignoring unsupported command", "cmd", cmd)
}
