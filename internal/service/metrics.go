package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_dispatch_outcomes_total",
			Help: "Outbound dispatch attempts by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	logWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_log_writes_total",
			Help: "Best-effort message log writes by channel and result",
		},
		[]string{"channel", "result"},
	)

	gateChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_gate_checks_total",
			Help: "Session window checks by result",
		},
		[]string{"result"},
	)

	webhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_webhook_duration_seconds",
			Help:    "Webhook call latency by channel",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"channel"},
	)

	breakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)
