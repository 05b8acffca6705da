package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/session"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

const storePingTimeout = 2 * time.Second

type healthService struct {
	store           session.Store
	sender          webhook.Sender
	dispatchService DispatchService
}

func NewHealthService(
	store session.Store,
	sender webhook.Sender,
	dispatchService DispatchService,
) HealthService {
	return &healthService{
		store:           store,
		sender:          sender,
		dispatchService: dispatchService,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:             api.Healthy,
		SessionStoreStatus: s.checkSessionStore(ctx),
		MessageChannel:     channelStatus(s.sender.MessageConfigured()),
		FileChannel:        channelStatus(s.sender.FileConfigured()),
	}

	breakers := s.dispatchService.GetCircuitBreakerStatus()
	status.CircuitBreakers = breakers
	status.CircuitBreakerState = worstState(breakers)
	status.CircuitBreakerStatus = describeBreakers(breakers)

	// Without a session store nobody can log in.
	if status.SessionStoreStatus != api.HealthResponseSessionStoreStatusConnected {
		status.Status = api.Unhealthy
		return status
	}

	if status.CircuitBreakerState == api.Open {
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkSessionStore(ctx context.Context) api.HealthResponseSessionStoreStatus {
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		return api.HealthResponseSessionStoreStatusDisconnected
	}
	return api.HealthResponseSessionStoreStatusConnected
}

// worstState picks open over half-open over closed, so any tripped channel shows.
func worstState(breakers []BreakerStatus) api.HealthResponseCircuitBreakerState {
	worst := api.Closed
	for _, b := range breakers {
		switch {
		case b.State == api.Open:
			return api.Open
		case b.State == api.HalfOpen:
			worst = api.HalfOpen
		}
	}
	return worst
}

func describeBreakers(breakers []BreakerStatus) string {
	parts := make([]string, 0, len(breakers))
	for _, b := range breakers {
		parts = append(parts, b.Channel+": "+describeCounts(b.Requests, b.Failures))
	}
	return strings.Join(parts, "; ")
}

func describeCounts(requests, failures uint32) string {
	if requests == 0 {
		return "No requests yet"
	}
	failureRate := float64(failures) / float64(requests) * 100
	return fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
}

func channelStatus(configured bool) api.ChannelStatus {
	if configured {
		return api.Configured
	}
	return api.NotConfigured
}
