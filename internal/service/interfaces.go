package service

import (
	"context"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// GateService decides whether free-form messaging is allowed for a contact.
type GateService interface {
	// IsSessionActive never fails. Any problem reaching the backend reads as a closed window.
	IsSessionActive(ctx context.Context, phone string) bool
}

type DispatchService interface {
	SendMessage(ctx context.Context, phone, message string) Outcome
	SendTemplate(ctx context.Context, phone, clientName string, variables []string) Outcome
	SendFile(ctx context.Context, phone string, file *webhook.File) Outcome
	// GetCircuitBreakerStatus reports every webhook channel's breaker.
	GetCircuitBreakerStatus() []BreakerStatus
}

// ProxyService forwards dashboard CRUD calls to the backend.
type ProxyService interface {
	ListContacts(ctx context.Context, onlyFollowUp bool, filterDate string) (*backend.Response, error)
	GetConversation(ctx context.Context, phone string, limit, offset int) (*backend.Response, error)
	Forward(ctx context.Context, req *backend.Request) (*backend.Response, error)
	ForwardAlert(ctx context.Context, req *backend.Request) (*backend.Response, error)
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}
