package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/models"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

const (
	breakerMessage = "message"
	breakerFile    = "file"
)

const (
	channelText     = "text"
	channelTemplate = "template"
	channelFile     = "file"
)

type dispatchService struct {
	backend        backend.Client
	sender         webhook.Sender
	gate           GateService
	validate       *validator.Validate
	messageBreaker *CircuitBreaker
	fileBreaker    *CircuitBreaker
	now            func() time.Time
	logger         *zap.Logger
}

// NewDispatchService wires the send pipeline. A nil now uses time.Now.
func NewDispatchService(
	cfg *config.WebhookConfig,
	client backend.Client,
	sender webhook.Sender,
	gate GateService,
	now func() time.Time,
	logger *zap.Logger,
) DispatchService {
	if now == nil {
		now = time.Now
	}
	return &dispatchService{
		backend:        client,
		sender:         sender,
		gate:           gate,
		validate:       validator.New(),
		messageBreaker: NewCircuitBreaker("message-webhook", &cfg.CircuitBreaker, logger),
		fileBreaker:    NewCircuitBreaker("file-webhook", &cfg.CircuitBreaker, logger),
		now:            now,
		logger:         logger,
	}
}

// SendMessage validates, checks configuration, consults the gate, transmits
// and then logs. The log write never changes the outcome.
func (s *dispatchService) SendMessage(ctx context.Context, phone, message string) Outcome {
	msg := models.TextMessage{Phone: phone, Message: message}
	if err := s.validate.StructCtx(ctx, msg); err != nil {
		return s.finish(channelText, phone, rejected(ErrMissingFields))
	}

	if !s.sender.MessageConfigured() {
		s.logger.Error("Message webhook URL is not configured")
		return s.finish(channelText, phone, notConfigured())
	}

	if !s.gate.IsSessionActive(ctx, phone) {
		return s.finish(channelText, phone, requiresTemplate())
	}

	err := s.transmit(ctx, channelText, func() error {
		return s.sender.SendText(ctx, &models.WebhookTextRequest{
			Phone:   phone,
			Message: message,
			Type:    models.PayloadTypeText,
		})
	})
	if err != nil {
		return s.finish(channelText, phone, upstreamFailure(newUpstreamError("send message", err)))
	}

	s.observeLog(channelText, phone, s.logMessage(ctx, phone, message, ""))
	return s.finish(channelText, phone, sent())
}

// SendTemplate transmits a pre-approved template. Templates are the path for
// closed windows, so the gate is not consulted.
func (s *dispatchService) SendTemplate(ctx context.Context, phone, clientName string, variables []string) Outcome {
	msg := models.TemplateMessage{Phone: phone, ClientName: clientName, Variables: variables}
	if err := s.validate.StructCtx(ctx, msg); err != nil {
		return s.finish(channelTemplate, phone, rejected(ErrMissingTemplateFields))
	}

	if !s.sender.MessageConfigured() {
		s.logger.Error("Message webhook URL is not configured")
		return s.finish(channelTemplate, phone, notConfigured())
	}

	err := s.transmit(ctx, channelTemplate, func() error {
		return s.sender.SendTemplate(ctx, &models.WebhookTemplateRequest{
			Phone:      phone,
			ClientName: clientName,
			Variables:  variables,
			Type:       models.PayloadTypeTemplate,
		})
	})
	if err != nil {
		return s.finish(channelTemplate, phone, upstreamFailure(newUpstreamError("send template", err)))
	}

	entry := &models.TemplateLog{
		Phone:      phone,
		ClientName: clientName,
		Message:    "[template] " + strings.Join(variables, ", "),
	}
	s.observeLog(channelTemplate, phone, s.backend.LogTemplateMessage(context.WithoutCancel(ctx), entry))
	return s.finish(channelTemplate, phone, sent())
}

// SendFile uploads a document. Files are sent regardless of the session window.
func (s *dispatchService) SendFile(ctx context.Context, phone string, file *webhook.File) Outcome {
	if phone == "" {
		return s.finish(channelFile, phone, rejected(ErrMissingPhone))
	}
	if file == nil || file.Content == nil || file.Name == "" {
		return s.finish(channelFile, phone, rejected(ErrMissingFile))
	}

	if !s.sender.FileConfigured() {
		s.logger.Error("File webhook URL is not configured")
		return s.finish(channelFile, phone, notConfigured())
	}

	err := s.transmit(ctx, channelFile, func() error {
		return s.sender.SendFile(ctx, phone, file)
	})
	if err != nil {
		return s.finish(channelFile, phone, upstreamFailure(newUpstreamError("send file", err)))
	}

	s.observeLog(channelFile, phone, s.logMessage(ctx, phone, "📎 "+file.Name, "File sent ("+file.ContentType+")"))
	return s.finish(channelFile, phone, sent())
}

func (s *dispatchService) GetCircuitBreakerStatus() []BreakerStatus {
	return []BreakerStatus{
		snapshot(breakerMessage, s.messageBreaker),
		snapshot(breakerFile, s.fileBreaker),
	}
}

func snapshot(channel string, cb *CircuitBreaker) BreakerStatus {
	requests, failures := cb.GetCounts()
	return BreakerStatus{
		Channel:  channel,
		State:    cb.GetState(),
		Requests: requests,
		Failures: failures,
	}
}

// breakerFor returns the breaker guarding a dispatch channel.
// Text and template sends share the message webhook.
func (s *dispatchService) breakerFor(channel string) *CircuitBreaker {
	if channel == channelFile {
		return s.fileBreaker
	}
	return s.messageBreaker
}

func (s *dispatchService) transmit(ctx context.Context, channel string, fn func() error) error {
	start := time.Now()
	err := s.breakerFor(channel).Execute(ctx, fn)
	if !errors.Is(err, ErrCircuitOpen) {
		webhookDuration.WithLabelValues(channel).Observe(time.Since(start).Seconds())
	}
	return err
}

// logMessage writes the outbound record. It runs detached from the caller's
// cancellation and is bounded by the backend client's log timeout.
func (s *dispatchService) logMessage(ctx context.Context, phone, message, notes string) error {
	entry := &models.MessageLog{
		Phone:          phone,
		Message:        message,
		Timestamp:      s.now().UTC().Format(time.RFC3339Nano),
		Direction:      models.DirectionDashboard,
		FollowUpNeeded: false,
		Notes:          notes,
		HandledBy:      models.HandledByDashboard,
	}
	return s.backend.LogMessage(context.WithoutCancel(ctx), entry)
}

// observeLog routes a log write result to logs and metrics only.
func (s *dispatchService) observeLog(channel, phone string, err error) {
	if err != nil {
		logWrites.WithLabelValues(channel, "failed").Inc()
		s.logger.Warn("Failed to log outbound message",
			zap.String("channel", channel),
			zap.String("phone", phone),
			zap.Error(err))
		return
	}
	logWrites.WithLabelValues(channel, "ok").Inc()
}

func (s *dispatchService) finish(channel, phone string, outcome Outcome) Outcome {
	dispatchOutcomes.WithLabelValues(channel, string(outcome.Kind)).Inc()

	fields := []zap.Field{
		zap.String("channel", channel),
		zap.String("phone", phone),
		zap.String("outcome", string(outcome.Kind)),
	}
	switch outcome.Kind {
	case OutcomeSent:
		s.logger.Info("Message dispatched", fields...)
	case OutcomeUpstreamFailure:
		requests, failures := s.breakerFor(channel).GetCounts()
		s.logger.Error("Dispatch failed", append(fields,
			zap.Error(outcome.Err),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))...)
	default:
		s.logger.Info("Dispatch not sent", append(fields, zap.String("reason", outcome.Reason))...)
	}
	return outcome
}
