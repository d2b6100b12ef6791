package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Update processing
var (
	// UpdatesTotal counts inbound updates by kind (message, command, callback, other)
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_total",
			Help: "Inbound Telegram updates by kind",
		},
		[]string{"kind"},
	)

	UpdateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "telegram_update_duration_seconds",
			Help:    "Time to handle one update including outbound calls",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// UpdatesDispatchedTotal counts updates by the menu handler that took them ("none" if unmatched)
	UpdatesDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_dispatched_total",
			Help: "Updates by the menu handler that handled them",
		},
		[]string{"handler"},
	)

	HandlerPanicsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telegram_handler_panics_total",
			Help: "Update handlers that panicked and were recovered",
		},
	)
)

// Outbound Bot API calls
var (
	// OutboundCallsTotal counts Bot API calls by method and status (ok, error)
	OutboundCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_outbound_calls_total",
			Help: "Bot API calls by method and status",
		},
		[]string{"method", "status"},
	)
)

// Webhook receiver
var (
	// WebhookRequestsTotal counts webhook deliveries by outcome (queued, logged, malformed, dropped)
	WebhookRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_webhook_requests_total",
			Help: "Webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)
)
