package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
)

type gateService struct {
	backend backend.Client
	logger  *zap.Logger
}

func NewGateService(client backend.Client, logger *zap.Logger) GateService {
	return &gateService{
		backend: client,
		logger:  logger,
	}
}

// IsSessionActive asks the backend once. Errors, non-2xx answers and a
// missing session_active field all mean closed.
func (s *gateService) IsSessionActive(ctx context.Context, phone string) bool {
	status, err := s.backend.SessionStatus(ctx, phone)
	if err != nil {
		gateChecks.WithLabelValues("error").Inc()
		s.logger.Warn("Session check failed, treating window as closed",
			zap.String("phone", phone),
			zap.Error(err))
		return false
	}

	if status.SessionActive == nil {
		gateChecks.WithLabelValues("invalid").Inc()
		s.logger.Warn("Session check response has no session_active field",
			zap.String("phone", phone))
		return false
	}

	if *status.SessionActive {
		gateChecks.WithLabelValues("open").Inc()
		return true
	}
	gateChecks.WithLabelValues("closed").Inc()
	return false
}
