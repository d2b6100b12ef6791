package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/antares-engineering/antares-telegram-bot/pkg/api"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/menu"
	"github.com/antares-engineering/antares-telegram-bot/pkg/telegram"
	"github.com/antares-engineering/antares-telegram-bot/pkg/workers"
)

const (
	updateModePolling = "polling"
	updateModeWebhook = "webhook"
)

type Config struct {
	TelegramBotToken               string  `env:"TOKEN,required,notEmpty"`
	ServerURL                      string  `env:"SERVER_URL"`
	Port                           string  `env:"PORT" envDefault:"5000"`
	ProxyURL                       string  `env:"PROXY"`
	UpdateMode                     string  `env:"UPDATE_MODE" envDefault:"polling"`
	TelegramUpdateListenerPoolSize int     `env:"TELEGRAM_UPDATE_LISTENER_POOL_SIZE" envDefault:"10"`
	TelegramWebhookQueueSize       int     `env:"TELEGRAM_WEBHOOK_QUEUE_SIZE" envDefault:"100"`
	TelegramRetryMax               int     `env:"TELEGRAM_RETRY_MAX" envDefault:"3"`
	TelegramRateLimit              float64 `env:"TELEGRAM_RATE_LIMIT" envDefault:"25"`
	TelegramDebug                  bool    `env:"TELEGRAM_DEBUG" envDefault:"false"`
	LogLevel                       string  `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor                     bool    `env:"LOG_NO_COLOR" envDefault:"false"`
}

func (c Config) validate() error {
	switch c.UpdateMode {
	case updateModePolling:
	case updateModeWebhook:
		if c.ServerURL == "" {
			return errors.New("SERVER_URL is required in webhook mode")
		}
		if _, err := url.ParseRequestURI(c.ServerURL); err != nil {
			return fmt.Errorf("parsing SERVER_URL: %w", err)
		}
	default:
		return fmt.Errorf("unknown UPDATE_MODE %q, want %q or %q", c.UpdateMode, updateModePolling, updateModeWebhook)
	}

	if c.TelegramUpdateListenerPoolSize <= 0 {
		return fmt.Errorf("TELEGRAM_UPDATE_LISTENER_POOL_SIZE must be positive, got %d", c.TelegramUpdateListenerPoolSize)
	}
	if c.TelegramRetryMax < 0 {
		return fmt.Errorf("TELEGRAM_RETRY_MAX must not be negative, got %d", c.TelegramRetryMax)
	}

	return nil
}

// webhookURL is where Telegram should push updates. It is empty in polling mode.
func (c Config) webhookURL() string {
	if c.UpdateMode != updateModeWebhook {
		return ""
	}
	return strings.TrimSuffix(c.ServerURL, "/") + api.WebhookPath(c.TelegramBotToken)
}

func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &logger.Options{
		Level:      logger.ParseLevel(cfg.LogLevel),
		TimeFormat: logger.DefaultOptions.TimeFormat,
		ShowSource: logger.DefaultOptions.ShowSource,
		NoColor:    cfg.LogNoColor,
	})))

	workerGroup, err := setupWorkers(cfg)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers(cfg Config) (workers.Group, error) {
	telegramClient, err := telegram.NewClient(telegram.ClientConfig{
		Token:     cfg.TelegramBotToken,
		ProxyURL:  cfg.ProxyURL,
		Debug:     cfg.TelegramDebug,
		RetryMax:  cfg.TelegramRetryMax,
		RateLimit: cfg.TelegramRateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	webhook := api.NewWebhook(cfg.TelegramBotToken, cfg.UpdateMode == updateModeWebhook, cfg.TelegramWebhookQueueSize)
	server := api.NewServer(webhook)

	var source workers.UpdateSource = telegramClient
	if cfg.UpdateMode == updateModeWebhook {
		source = webhook
	}
	slog.Info("receiving updates", "mode", cfg.UpdateMode)

	registry := telegram.NewMenuRegistry(telegramClient, menu.Offices())

	return workers.Group{
		workers.NewTelegramUpdateListener(source, telegramClient, registry, cfg.TelegramUpdateListenerPoolSize),
		workers.NewHTTPServer(":"+cfg.Port, server),
		workers.NewWebhookRegistrar(telegramClient, cfg.webhookURL()),
	}, nil
}
