package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/displaytime"
	"github.com/ppopeskul/wa-dashboard/internal/session"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

type Service struct {
	Gate     GateService
	Dispatch DispatchService
	Proxy    ProxyService
	Health   HealthService
}

func NewService(
	cfg *config.Config,
	client backend.Client,
	sender webhook.Sender,
	store session.Store,
	clock *displaytime.Converter,
	logger *zap.Logger,
) *Service {
	gateService := NewGateService(client, logger)
	dispatchService := NewDispatchService(&cfg.Webhook, client, sender, gateService, time.Now, logger)
	proxyService := NewProxyService(&cfg.Backend, client, clock, logger)
	healthService := NewHealthService(store, sender, dispatchService)

	return &Service{
		Gate:     gateService,
		Dispatch: dispatchService,
		Proxy:    proxyService,
		Health:   healthService,
	}
}
