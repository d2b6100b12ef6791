package workers

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/metrics"
)

type Handler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

type UpdateSource interface {
	Updates() tgbotapi.UpdatesChannel
	Stop()
}

type CallbackAcknowledger interface {
	AcknowledgeCallback(ctx context.Context, callbackQueryID string)
}

const laneBufferSize = 16

type telegramUpdateListener struct {
	source   UpdateSource
	acker    CallbackAcknowledger
	handler  Handler
	poolSize int
	wg       sync.WaitGroup
}

func NewTelegramUpdateListener(
	source UpdateSource,
	acker CallbackAcknowledger,
	handler Handler,
	poolSize int,
) *telegramUpdateListener {
	if poolSize <= 0 {
		poolSize = 1
	}
	return &telegramUpdateListener{
		source:   source,
		acker:    acker,
		handler:  handler,
		poolSize: poolSize,
	}
}

func (t *telegramUpdateListener) Name() string { return "telegram_listener_worker" }

func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", t.Name(), "lanes", t.poolSize)
	defer slog.Info("Worker stopped", "name", t.Name())

	updates := t.source.Updates()

	// Updates of one chat always land on the same lane and run in receive order.
	lanes := make([]chan tgbotapi.Update, t.poolSize)
	for i := range lanes {
		lanes[i] = make(chan tgbotapi.Update, laneBufferSize)

		t.wg.Add(1)
		go func(lane <-chan tgbotapi.Update) {
			defer t.wg.Done()
			for update := range lane {
				t.processUpdate(ctx, &update)
			}
		}(lanes[i])
	}

	defer func() {
		for _, lane := range lanes {
			close(lane)
		}
		t.wg.Wait()
	}()
	defer t.source.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				slog.Warn("Update source closed")
				return nil
			}

			select {
			case lanes[laneFor(chatID(&update), t.poolSize)] <- update:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func laneFor(chatID int64, lanes int) int {
	n := int64(lanes)
	return int((chatID%n + n) % n)
}

// chatID is 0 for updates not tied to a chat; they share lane 0.
func chatID(update *tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.Chat != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil && update.CallbackQuery.Message.Chat != nil:
		return update.CallbackQuery.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		return update.CallbackQuery.From.ID
	default:
		return 0
	}
}

// processUpdate never lets a single update take the process down. Callback queries are
// acknowledged exactly once, after the handler, whatever the handler did.
func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	// in-flight updates finish their outbound calls during shutdown
	ctx = logger.ContextWithUpdateID(context.WithoutCancel(ctx), update.UpdateID)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			metrics.HandlerPanicsTotal.Inc()
			slog.ErrorContext(ctx, "Recovered from panic while handling update", "panic", r, "stack", string(debug.Stack()))
		}
		metrics.UpdateDuration.Observe(time.Since(start).Seconds())
	}()

	kind := updateKind(update)
	metrics.UpdatesTotal.WithLabelValues(kind).Inc()

	switch {
	case update.Message != nil:
		slog.InfoContext(ctx, "Processing update", "kind", kind, "chatID", update.Message.Chat.ID)
	case update.CallbackQuery != nil:
		defer t.acker.AcknowledgeCallback(ctx, update.CallbackQuery.ID)
		slog.InfoContext(ctx, "Processing update", "kind", kind, "data", update.CallbackQuery.Data)
	default:
		slog.WarnContext(ctx, "Received unsupported update type")
		return
	}

	t.handler.HandleUpdate(ctx, update)
}

func updateKind(update *tgbotapi.Update) string {
	switch {
	case update.Message != nil && len(update.Message.Text) > 0 && update.Message.Text[0] == '/':
		return "command"
	case update.Message != nil:
		return "message"
	case update.CallbackQuery != nil:
		return "callback"
	default:
		return "other"
	}
}
