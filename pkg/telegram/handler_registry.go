package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/metrics"
)

type Handler interface {
	CanHandle(update *tgbotapi.Update) bool
	Handle(ctx context.Context, update *tgbotapi.Update)
}

// Registry routes an update to the first menu handler that accepts it.
type Registry struct {
	handlers []Handler
}

func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

func (r *Registry) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	input := menuInput(update)

	for _, handler := range r.handlers {
		if !handler.CanHandle(update) {
			continue
		}

		name := handlerName(handler)
		metrics.UpdatesDispatchedTotal.WithLabelValues(name).Inc()
		slog.DebugContext(ctx, "Dispatching menu input", "handler", name, "input", input)

		handler.Handle(ctx, update)
		return
	}

	metrics.UpdatesDispatchedTotal.WithLabelValues("none").Inc()
	slog.WarnContext(ctx, "No menu handler for input", "input", input)
}

// menuInput is what the user pressed or typed: callback data or the message text.
func menuInput(update *tgbotapi.Update) string {
	switch {
	case update.CallbackQuery != nil:
		return update.CallbackQuery.Data
	case update.Message != nil:
		return update.Message.Text
	default:
		return ""
	}
}

func handlerName(handler Handler) string {
	name := fmt.Sprintf("%T", handler)
	return name[strings.LastIndex(name, ".")+1:]
}
