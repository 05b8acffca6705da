// Package backend is the HTTP client for the remote dashboard API that owns
// contacts, conversations, alerts, automation flags and the message log.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/models"
)

// maxBodySize bounds how much of an upstream response is buffered.
const maxBodySize = 10 << 20

// Client talks to the remote backend.
type Client interface {
	// SessionStatus asks whether the 24-hour window is open for phone.
	SessionStatus(ctx context.Context, phone string) (*models.SessionStatus, error)
	// LogMessage records an outbound message.
	LogMessage(ctx context.Context, entry *models.MessageLog) error
	// LogTemplateMessage records an outbound template send.
	LogTemplateMessage(ctx context.Context, entry *models.TemplateLog) error
	// Do forwards an arbitrary request and returns the upstream response verbatim.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is a pass-through call to the backend.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    []byte
	Timeout time.Duration
}

// Response is the buffered upstream answer.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError is returned by the typed calls on a non-2xx answer.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.StatusCode)
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	gateTimeout time.Duration
	logTimeout  time.Duration
}

// NewClient builds a backend client. Every call carries its own deadline,
// so the shared http.Client has no global timeout.
func NewClient(cfg *config.BackendConfig, httpClient *http.Client, logger *zap.Logger) Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &apiClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		logger:      logger,
		gateTimeout: config.Seconds(cfg.GateTimeout),
		logTimeout:  config.Seconds(cfg.LogTimeout),
	}
}

// SessionStatus implements Client.
func (c *apiClient) SessionStatus(ctx context.Context, phone string) (*models.SessionStatus, error) {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    "/session/" + url.PathEscape(phone),
		Timeout: c.gateTimeout,
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &StatusError{Op: "session status", StatusCode: resp.StatusCode}
	}

	var status models.SessionStatus
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode session status: %w", err)
	}
	return &status, nil
}

// LogMessage implements Client.
func (c *apiClient) LogMessage(ctx context.Context, entry *models.MessageLog) error {
	return c.postJSON(ctx, "log message", "/log_message", entry)
}

// LogTemplateMessage implements Client.
func (c *apiClient) LogTemplateMessage(ctx context.Context, entry *models.TemplateLog) error {
	return c.postJSON(ctx, "log template message", "/api/log_template_message", entry)
}

func (c *apiClient) postJSON(ctx context.Context, op, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Timeout: c.logTimeout,
	})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}
	return nil
}

// Do implements Client.
func (c *apiClient) Do(ctx context.Context, r *Request) (*Response, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("backend base URL is not configured")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
