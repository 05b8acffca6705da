// Package webhook delivers outbound messages and files to the automation webhooks.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/models"
)

// ErrNotConfigured is returned when the target webhook URL is empty.
var ErrNotConfigured = errors.New("channel not configured")

// StatusError reports a webhook answer outside the accepted set.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// File is an uploaded document to forward.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Sender posts to the messaging and file webhooks.
type Sender interface {
	SendText(ctx context.Context, req *models.WebhookTextRequest) error
	SendTemplate(ctx context.Context, req *models.WebhookTemplateRequest) error
	SendFile(ctx context.Context, phone string, file *File) error
	MessageConfigured() bool
	FileConfigured() bool
}

type sender struct {
	messageURL  string
	fileURL     string
	timeout     time.Duration
	fileTimeout time.Duration
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewSender builds a Sender from the webhook configuration.
func NewSender(cfg *config.WebhookConfig, httpClient *http.Client, logger *zap.Logger) Sender {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &sender{
		messageURL:  cfg.MessageURL,
		fileURL:     cfg.FileURL,
		timeout:     config.Seconds(cfg.Timeout),
		fileTimeout: config.Seconds(cfg.FileTimeout),
		httpClient:  httpClient,
		logger:      logger,
	}
}

func (s *sender) MessageConfigured() bool {
	return s.messageURL != ""
}

func (s *sender) FileConfigured() bool {
	return s.fileURL != ""
}

// SendText posts a free-form message.
func (s *sender) SendText(ctx context.Context, req *models.WebhookTextRequest) error {
	return s.postJSON(ctx, req)
}

// SendTemplate posts a template message to the same webhook as SendText.
func (s *sender) SendTemplate(ctx context.Context, req *models.WebhookTemplateRequest) error {
	return s.postJSON(ctx, req)
}

func (s *sender) postJSON(ctx context.Context, payload any) error {
	if !s.MessageConfigured() {
		return ErrNotConfigured
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.messageURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.do(req, acceptedStatus)
}

// SendFile forwards the raw file as multipart/form-data with phone and type=document.
func (s *sender) SendFile(ctx context.Context, phone string, file *File) error {
	if !s.FileConfigured() {
		return ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := mw.WriteField("phone", phone); err != nil {
		return fmt.Errorf("failed to write phone field: %w", err)
	}
	if err := mw.WriteField("type", models.PayloadTypeDocument); err != nil {
		return fmt.Errorf("failed to write type field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	ctx, cancel := withTimeout(ctx, s.fileTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.fileURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return s.do(req, okStatus)
}

func (s *sender) do(req *http.Request, accept func(int) bool) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if !accept(resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// acceptedStatus is the set the messaging webhook answers with on success.
func acceptedStatus(code int) bool {
	return code == http.StatusOK || code == http.StatusCreated || code == http.StatusAccepted
}

// okStatus mirrors a plain "response ok" check used for file uploads.
func okStatus(code int) bool {
	return code < http.StatusBadRequest
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
