package handler

import (
	"context"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
)

type TelegramClient interface {
	Send(ctx context.Context, message domain.Message) error
}
