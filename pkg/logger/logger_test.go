package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(buf, &Options{Level: level, NoColor: true}))
}

func TestHandlerWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelDebug)

	log.Info("update handled", "chatID", int64(42), Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "| update handled")
	assert.Contains(t, out, "chatID=42")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "\x1b[")
}

func TestHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestHandlerPrintsUpdateID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo)

	ctx := ContextWithUpdateID(context.Background(), 1234)
	log.InfoContext(ctx, "processing")

	assert.Contains(t, buf.String(), "1234 ")
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf, slog.LevelInfo).With("worker", "listener").WithGroup("tg")

	log.Info("sent", "method", "sendMessage")

	assert.Contains(t, buf.String(), "worker=listener")
	assert.Contains(t, buf.String(), "tg.method=sendMessage")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), in)
	}
}

func TestPrintLogger(t *testing.T) {
	var buf bytes.Buffer
	p := PrintLogger{Logger: newTestLogger(&buf, slog.LevelDebug), Level: slog.LevelDebug}

	p.Printf("Endpoint: %s, response: %s\n", "getMe", "ok")
	p.Println("plain", "line")

	assert.Contains(t, buf.String(), "| Endpoint: getMe, response: ok")
	assert.Contains(t, buf.String(), "| plain line")
}

func TestPrintLoggerRedactsSecret(t *testing.T) {
	var buf bytes.Buffer
	p := PrintLogger{Logger: newTestLogger(&buf, slog.LevelInfo), Level: slog.LevelWarn, Secret: "123:abc"}

	p.Println(`Post "https://api.telegram.org/bot123:abc/getUpdates": EOF`)

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "bot<token>/getUpdates")
	assert.NotContains(t, buf.String(), "123:abc")
}

func TestUpdateIDFromContextMissing(t *testing.T) {
	_, ok := UpdateIDFromContext(context.Background())
	assert.False(t, ok)
}
