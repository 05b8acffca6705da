package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/service"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

func newBreaker(t *testing.T, cfg config.CircuitBreakerConfig) *service.CircuitBreaker {
	t.Helper()
	return service.NewCircuitBreaker(t.Name(), &cfg, zap.NewNop())
}

func failing() error {
	return errors.New("webhook down")
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name    string
		trip    bool
		cancel  bool
		fn      func() error
		wantErr error
		wantMsg string
	}{
		{
			name: "success",
			fn:   func() error { return nil },
		},
		{
			name:    "function error is returned as is",
			fn:      failing,
			wantMsg: "webhook down",
		},
		{
			name:    "canceled context skips the call",
			cancel:  true,
			fn:      func() error { return errors.New("must not run") },
			wantErr: context.Canceled,
		},
		{
			name:    "open breaker blocks the call",
			trip:    true,
			fn:      func() error { return errors.New("must not run") },
			wantErr: service.ErrCircuitOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newBreaker(t, config.CircuitBreakerConfig{
				MaxRequests:      1,
				Interval:         10,
				Timeout:          60,
				FailureRatio:     0.5,
				ConsecutiveFails: 3,
			})

			if tt.trip {
				for i := 0; i < 5; i++ {
					_ = cb.Execute(context.Background(), failing)
				}
			}

			ctx := context.Background()
			if tt.cancel {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			err := cb.Execute(ctx, tt.fn)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCircuitBreaker_GetCounts(t *testing.T) {
	cb := newBreaker(t, config.CircuitBreakerConfig{
		MaxRequests:      10,
		Interval:         60,
		Timeout:          60,
		FailureRatio:     0.8,
		ConsecutiveFails: 10,
	})

	requests, failures := cb.GetCounts()
	assert.Zero(t, requests)
	assert.Zero(t, failures)

	for i := 0; i < 5; i++ {
		if i%2 == 0 {
			require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
		} else {
			require.Error(t, cb.Execute(context.Background(), failing))
		}
	}

	requests, failures = cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(2), failures)
}

func TestCircuitBreaker_FailureClassification(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantFailures uint32
	}{
		{name: "client error answer", err: &webhook.StatusError{StatusCode: 403}},
		{name: "no content answer", err: &webhook.StatusError{StatusCode: 204}},
		{name: "wrapped client error answer", err: fmt.Errorf("send: %w", &webhook.StatusError{StatusCode: 404})},
		{name: "server error answer", err: &webhook.StatusError{StatusCode: 502}, wantFailures: 3},
		{name: "transport error", err: errors.New("connection refused"), wantFailures: 3},
		{name: "timeout", err: context.DeadlineExceeded, wantFailures: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newBreaker(t, config.CircuitBreakerConfig{
				MaxRequests:      1,
				Interval:         60,
				Timeout:          60,
				FailureRatio:     0.9,
				ConsecutiveFails: 10,
			})

			for i := 0; i < 3; i++ {
				assert.ErrorIs(t, cb.Execute(context.Background(), func() error { return tt.err }), tt.err)
			}

			requests, failures := cb.GetCounts()
			assert.Equal(t, uint32(3), requests)
			assert.Equal(t, tt.wantFailures, failures)
			assert.Equal(t, api.Closed, cb.GetState())
		})
	}
}

func TestCircuitBreaker_StateTransitions(t *testing.T) {
	cb := newBreaker(t, config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         10,
		Timeout:          1,
		FailureRatio:     0.5,
		ConsecutiveFails: 2,
	})
	assert.Equal(t, api.Closed, cb.GetState())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), failing)
	}
	assert.Equal(t, api.Open, cb.GetState())

	err := cb.Execute(context.Background(), func() error { return nil })
	require.ErrorIs(t, err, service.ErrCircuitOpen)
	assert.Contains(t, err.Error(), "circuit breaker is open")

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, api.HalfOpen, cb.GetState())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, api.Closed, cb.GetState())
}
