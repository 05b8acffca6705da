// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/middleware"
	"github.com/ppopeskul/wa-dashboard/internal/service"
	"github.com/ppopeskul/wa-dashboard/internal/session"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

const (
	errorCodeWrongPassword = "WRONG_PASSWORD"
)

const (
	errorMessageWrongPassword  = "Wrong password"
	errorMessageInvalidBody    = "Invalid request body"
	errorMessageFileTooLarge   = "File too large"
	errorMessageSessionFailure = "Failed to update session"
	errorMessageBackend        = "Backend request failed"
	errorMessageBackendTimeout = "Backend request timed out"
)

const (
	messageSent             = "Message sent successfully"
	messageTemplateSent     = "Template sent successfully"
	messageFileSent         = "File sent successfully"
	messageTemplateRequired = "24-hour session expired. Please send a template message."
)

const (
	defaultMaxUpload  = 100 << 20
	maxUploadInMemory = 32 << 20
	defaultMimeType   = "application/octet-stream"
)

type Handler struct {
	service  *service.Service
	sessions *session.Manager
	logger   *zap.Logger

	maxUploadBytes int64
}

// Option adjusts a Handler.
type Option func(*Handler)

// WithMaxUploadBytes caps the body size accepted by SendFile.
func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, sessions *session.Manager, logger *zap.Logger, opts ...Option) api.ServerInterface {
	h := &Handler{
		service:        service,
		sessions:       sessions,
		logger:         logger,
		maxUploadBytes: defaultMaxUpload,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Login implements api.ServerInterface. The password is read from a JSON
// body or from the "password" form field.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	password, err := readPassword(r)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	s, err := h.sessions.Login(w, r, password)
	if err != nil {
		if errors.Is(err, session.ErrWrongPassword) {
			h.sendError(w, r, http.StatusUnauthorized, errorCodeWrongPassword, errorMessageWrongPassword)
			return
		}
		h.logger.Error("Failed to create session",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageSessionFailure)
		return
	}

	render.JSON(w, r, sessionResponse(s))
}

func readPassword(r *http.Request) (string, error) {
	if render.GetRequestContentType(r) == render.ContentTypeJSON {
		var req api.LoginJSONRequestBody
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			return "", err
		}
		return req.Password, nil
	}
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostFormValue("password"), nil
}

// Logout implements api.ServerInterface.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, current := h.sessions.Current(r)

	if err := h.sessions.Logout(w, r); err != nil {
		h.logger.Warn("Failed to delete session on logout",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
	}

	render.JSON(w, r, api.SessionResponse{
		LoggedIn: false,
		Theme:    api.SessionResponseTheme(current.Theme),
	})
}

// ToggleTheme implements api.ServerInterface.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.sessions.ToggleTheme(w, r)
	if err != nil {
		h.logger.Error("Failed to toggle theme",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageSessionFailure)
		return
	}

	render.JSON(w, r, api.SessionResponse{
		LoggedIn: true,
		Theme:    api.SessionResponseTheme(theme),
	})
}

// GetCurrentSession implements api.ServerInterface.
func (h *Handler) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	_, s := h.sessions.Current(r)
	render.JSON(w, r, sessionResponse(s))
}

func sessionResponse(s *session.Session) api.SessionResponse {
	return api.SessionResponse{
		LoggedIn: s.LoggedIn,
		Theme:    api.SessionResponseTheme(s.Theme),
	}
}

// SendMessage implements api.ServerInterface.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req api.SendMessageJSONRequestBody
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	outcome := h.service.Dispatch.SendMessage(r.Context(), req.Phone, req.Message)
	h.writeOutcome(w, r, outcome, messageSent)
}

// SendTemplate implements api.ServerInterface.
func (h *Handler) SendTemplate(w http.ResponseWriter, r *http.Request) {
	var req api.SendTemplateJSONRequestBody
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	var clientName string
	if req.ClientName != nil {
		clientName = *req.ClientName
	}

	outcome := h.service.Dispatch.SendTemplate(r.Context(), req.Phone, clientName, req.Variables)
	h.writeOutcome(w, r, outcome, messageTemplateSent)
}

// SendFile implements api.ServerInterface. Missing fields are reported by the
// dispatch service so the checks stay in one place.
func (h *Handler) SendFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadInMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Upload exceeds size limit",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.Int64("limit", tooLarge.Limit))
			h.sendError(w, r, http.StatusRequestEntityTooLarge, middleware.ErrorCodePayloadTooLarge, errorMessageFileTooLarge)
			return
		}
		h.logger.Debug("Failed to parse upload", zap.Error(err))
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				h.logger.Warn("Failed to remove upload temp files", zap.Error(err))
			}
		}()
	}

	var upload *webhook.File
	if file, header, err := r.FormFile("file"); err == nil {
		defer closeFile(file, h.logger)
		upload = &webhook.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		}
		if upload.ContentType == "" {
			upload.ContentType = defaultMimeType
		}
	}

	outcome := h.service.Dispatch.SendFile(r.Context(), r.FormValue("phone"), upload)
	h.writeOutcome(w, r, outcome, messageFileSent)
}

func closeFile(f multipart.File, logger *zap.Logger) {
	if err := f.Close(); err != nil {
		logger.Warn("Failed to close uploaded file", zap.Error(err))
	}
}

// GetSessionStatus implements api.ServerInterface.
func (h *Handler) GetSessionStatus(w http.ResponseWriter, r *http.Request, phone string) {
	render.JSON(w, r, api.SessionStatusResponse{
		Phone:         phone,
		SessionActive: h.service.Gate.IsSessionActive(r.Context(), phone),
	})
}

// GetHealth implements api.ServerInterface.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth(r.Context())

	response := api.HealthResponse{
		Status:             health.Status,
		Timestamp:          time.Now(),
		SessionStoreStatus: health.SessionStoreStatus,
		MessageChannel:     health.MessageChannel,
		FileChannel:        health.FileChannel,
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	if len(health.CircuitBreakers) > 0 {
		breakers := make([]api.CircuitBreakerInfo, 0, len(health.CircuitBreakers))
		for _, b := range health.CircuitBreakers {
			breakers = append(breakers, api.CircuitBreakerInfo{
				Channel:  b.Channel,
				State:    b.State,
				Requests: int(b.Requests),
				Failures: int(b.Failures),
			})
		}
		response.CircuitBreakers = &breakers
	}

	// Degraded still answers 200 so the dashboard stays reachable.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, outcome service.Outcome, sentMessage string) {
	switch outcome.Kind {
	case service.OutcomeSent:
		render.JSON(w, r, api.DispatchResponse{
			Success:       true,
			SessionActive: true,
			Message:       sentMessage,
			Outcome:       api.Sent,
		})
	case service.OutcomeRequiresTemplate:
		render.JSON(w, r, api.DispatchResponse{
			Success:       false,
			SessionActive: false,
			Message:       messageTemplateRequired,
			Outcome:       api.RequiresTemplate,
		})
	case service.OutcomeRejected:
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, outcome.Reason)
	default:
		h.sendUpstreamError(w, r, outcome.Err, outcome.Reason)
	}
}

// sendUpstreamError maps a failed outbound call to a status code:
// not configured 500, breaker open 503, timeout 504, anything else 502.
func (h *Handler) sendUpstreamError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrChannelNotConfigured):
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeNotConfigured, message)
	case errors.Is(err, service.ErrCircuitOpen):
		h.sendError(w, r, http.StatusServiceUnavailable, middleware.ErrorCodeServiceUnavailable, message)
	case errors.As(err, &upstreamErr) && upstreamErr.Timeout():
		h.sendError(w, r, http.StatusGatewayTimeout, middleware.ErrorCodeUpstreamTimeout, message)
	default:
		h.sendError(w, r, http.StatusBadGateway, middleware.ErrorCodeUpstream, message)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	middleware.WriteError(w, r, statusCode, errorCode, message)
}
