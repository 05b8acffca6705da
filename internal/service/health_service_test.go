package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/service"
	"github.com/ppopeskul/wa-dashboard/internal/service/mocks"
	"github.com/ppopeskul/wa-dashboard/internal/session"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

func unreachableStore(t *testing.T) session.Store {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:9999",
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return session.NewRedisStore(client, "test:", time.Hour)
}

func configuredSender() webhook.Sender {
	return webhook.NewSender(&config.WebhookConfig{
		MessageURL: "http://hooks.example/message",
		FileURL:    "http://hooks.example/file",
	}, nil, zap.NewNop())
}

func breakers(message, file api.HealthResponseCircuitBreakerState) []service.BreakerStatus {
	return []service.BreakerStatus{
		{Channel: "message", State: message, Requests: 10, Failures: 2},
		{Channel: "file", State: file},
	}
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name            string
		store           func(t *testing.T) session.Store
		sender          webhook.Sender
		breakers        []service.BreakerStatus
		wantStatus      api.HealthResponseStatus
		wantState       api.HealthResponseCircuitBreakerState
		wantStore       api.HealthResponseSessionStoreStatus
		wantMessageChan api.ChannelStatus
		wantFileChan    api.ChannelStatus
	}{
		{
			name:            "all good",
			store:           func(*testing.T) session.Store { return session.NewMemoryStore(time.Hour) },
			sender:          configuredSender(),
			breakers:        breakers(api.Closed, api.Closed),
			wantStatus:      api.Healthy,
			wantState:       api.Closed,
			wantStore:       api.HealthResponseSessionStoreStatusConnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
		{
			name:            "webhooks missing is still healthy",
			store:           func(*testing.T) session.Store { return session.NewMemoryStore(time.Hour) },
			sender:          webhook.NewSender(&config.WebhookConfig{}, nil, zap.NewNop()),
			breakers:        breakers(api.Closed, api.Closed),
			wantStatus:      api.Healthy,
			wantState:       api.Closed,
			wantStore:       api.HealthResponseSessionStoreStatusConnected,
			wantMessageChan: api.NotConfigured,
			wantFileChan:    api.NotConfigured,
		},
		{
			name:            "message breaker open",
			store:           func(*testing.T) session.Store { return session.NewMemoryStore(time.Hour) },
			sender:          configuredSender(),
			breakers:        breakers(api.Open, api.Closed),
			wantStatus:      api.Degraded,
			wantState:       api.Open,
			wantStore:       api.HealthResponseSessionStoreStatusConnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
		{
			name:            "file breaker open",
			store:           func(*testing.T) session.Store { return session.NewMemoryStore(time.Hour) },
			sender:          configuredSender(),
			breakers:        breakers(api.Closed, api.Open),
			wantStatus:      api.Degraded,
			wantState:       api.Open,
			wantStore:       api.HealthResponseSessionStoreStatusConnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
		{
			name:            "half-open breaker is reported but healthy",
			store:           func(*testing.T) session.Store { return session.NewMemoryStore(time.Hour) },
			sender:          configuredSender(),
			breakers:        breakers(api.Closed, api.HalfOpen),
			wantStatus:      api.Healthy,
			wantState:       api.HalfOpen,
			wantStore:       api.HealthResponseSessionStoreStatusConnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
		{
			name:            "session store down",
			store:           unreachableStore,
			sender:          configuredSender(),
			breakers:        breakers(api.Closed, api.Closed),
			wantStatus:      api.Unhealthy,
			wantState:       api.Closed,
			wantStore:       api.HealthResponseSessionStoreStatusDisconnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
		{
			name:            "store down outranks open breaker",
			store:           unreachableStore,
			sender:          configuredSender(),
			breakers:        breakers(api.Open, api.Closed),
			wantStatus:      api.Unhealthy,
			wantState:       api.Open,
			wantStore:       api.HealthResponseSessionStoreStatusDisconnected,
			wantMessageChan: api.Configured,
			wantFileChan:    api.Configured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatch := mocks.NewMockDispatchService(ctrl)
			mockDispatch.EXPECT().GetCircuitBreakerStatus().Return(tt.breakers)

			healthService := service.NewHealthService(tt.store(t), tt.sender, mockDispatch)
			status := healthService.GetHealth(context.Background())

			require.NotNil(t, status)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, tt.wantStore, status.SessionStoreStatus)
			assert.Equal(t, tt.wantMessageChan, status.MessageChannel)
			assert.Equal(t, tt.wantFileChan, status.FileChannel)
			assert.Equal(t, tt.wantState, status.CircuitBreakerState)
			assert.Equal(t, tt.breakers, status.CircuitBreakers)
		})
	}
}

func TestHealthService_CircuitBreakerStatusFormatting(t *testing.T) {
	tests := []struct {
		name     string
		requests uint32
		failures uint32
		want     string
	}{
		{name: "no requests", want: "message: No requests yet; file: No requests yet"},
		{name: "all successful", requests: 100, want: "message: Requests: 100, Failures: 0 (0.0%); file: No requests yet"},
		{name: "some failures", requests: 100, failures: 25, want: "message: Requests: 100, Failures: 25 (25.0%); file: No requests yet"},
		{name: "all failures", requests: 50, failures: 50, want: "message: Requests: 50, Failures: 50 (100.0%); file: No requests yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDispatch := mocks.NewMockDispatchService(ctrl)
			mockDispatch.EXPECT().GetCircuitBreakerStatus().Return([]service.BreakerStatus{
				{Channel: "message", State: api.Closed, Requests: tt.requests, Failures: tt.failures},
				{Channel: "file", State: api.Closed},
			})

			healthService := service.NewHealthService(session.NewMemoryStore(time.Hour), configuredSender(), mockDispatch)

			assert.Equal(t, tt.want, healthService.GetHealth(context.Background()).CircuitBreakerStatus)
		})
	}
}
