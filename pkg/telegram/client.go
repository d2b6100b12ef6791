package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/antares-engineering/antares-telegram-bot/pkg/domain"
	"github.com/antares-engineering/antares-telegram-bot/pkg/logger"
	"github.com/antares-engineering/antares-telegram-bot/pkg/metrics"
)

type ClientConfig struct {
	Token string
	// Endpoint is the Bot API URL pattern; defaults to tgbotapi.APIEndpoint.
	Endpoint string
	ProxyURL string
	Debug    bool

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RateLimit is the number of outbound calls per second. Zero disables limiting.
	RateLimit float64

	PollTimeout int
}

type client struct {
	token   string
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter

	pollTimeout int
	pollOnce    sync.Once
	updatesCh   tgbotapi.UpdatesChannel
}

func NewClient(cfg ClientConfig) (*client, error) {
	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	// Outside debug mode the SDK only logs failures, such as getUpdates errors while polling.
	sdkLogLevel := slog.LevelWarn
	if cfg.Debug {
		sdkLogLevel = slog.LevelDebug
	}
	if err := tgbotapi.SetLogger(logger.PrintLogger{Level: sdkLogLevel, Secret: cfg.Token}); err != nil {
		return nil, fmt.Errorf("setting bot api logger: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", redact(err, cfg.Token))
	}
	bot.Debug = cfg.Debug

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
	}

	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 60
	}

	return &client{
		token:       cfg.Token,
		bot:         bot,
		limiter:     limiter,
		pollTimeout: pollTimeout,
	}, nil
}

func newHTTPClient(cfg ClientConfig) (*http.Client, error) {
	transport := cleanhttp.DefaultPooledTransport()
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		slog.Info("using outbound proxy", "host", proxyURL.Host)
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	// the default logger prints request URLs, which carry the bot token
	rc.Logger = nil
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			slog.Warn("retrying bot api call", "method", path.Base(req.URL.Path), "attempt", attempt)
		}
	}

	return rc.StandardClient(), nil
}

// Updates starts long polling on first use.
func (c *client) Updates() tgbotapi.UpdatesChannel {
	c.pollOnce.Do(func() {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = c.pollTimeout
		c.updatesCh = c.bot.GetUpdatesChan(u)
	})
	return c.updatesCh
}

func (c *client) Stop() {
	c.bot.StopReceivingUpdates()
}

func (c *client) Send(ctx context.Context, message domain.Message) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	return c.request(message.Method(), message.ToChatMessage())
}

func (c *client) AcknowledgeCallback(ctx context.Context, callbackQueryID string) {
	if err := c.Send(ctx, &domain.CallbackMessage{ID: callbackQueryID}); err != nil {
		slog.ErrorContext(ctx, "Failed to acknowledge callback", "callbackID", callbackQueryID, logger.Err(err))
	}
}

func (c *client) SetWebhook(webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("creating webhook config: %w", redact(err, c.token))
	}

	if err := c.request("setWebhook", wh); err != nil {
		return err
	}

	info, err := c.bot.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("getting webhook info: %w", redact(err, c.token))
	}
	if info.LastErrorDate != 0 {
		slog.Warn("telegram reports webhook delivery errors", "lastError", info.LastErrorMessage, "pending", info.PendingUpdateCount)
	}

	return nil
}

func (c *client) DeleteWebhook() error {
	return c.request("deleteWebhook", tgbotapi.DeleteWebhookConfig{})
}

func (c *client) request(method string, chattable tgbotapi.Chattable) error {
	_, err := c.bot.Request(chattable)
	if err != nil {
		metrics.OutboundCallsTotal.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("calling %s: %w", method, redact(err, c.token))
	}

	metrics.OutboundCallsTotal.WithLabelValues(method, "ok").Inc()
	return nil
}

// redact keeps the bot token, which is part of every request URL, out of logged errors.
func redact(err error, token string) error {
	if err == nil || token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<token>"))
}
