package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// PrintLogger adapts Println/Printf style loggers, such as the Bot API SDK's, to slog.
type PrintLogger struct {
	Logger *slog.Logger
	Level  slog.Level
	// Secret, when set, is replaced with "<token>" in every line.
	Secret string
}

func (p PrintLogger) Println(v ...any) {
	p.log(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (p PrintLogger) Printf(format string, v ...any) {
	p.log(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

func (p PrintLogger) log(msg string) {
	l := p.Logger
	if l == nil {
		l = slog.Default()
	}
	if p.Secret != "" {
		msg = strings.ReplaceAll(msg, p.Secret, "<token>")
	}
	l.Log(context.Background(), p.Level, msg)
}
