package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

// Validation failures, detected before any network call.
var (
	ErrMissingFields         = errors.New("phone and message required")
	ErrMissingTemplateFields = errors.New("phone and variables required")
	ErrMissingPhone          = errors.New("Missing phone")
	ErrMissingFile           = errors.New("No file received")
	ErrInvalidFilterDate     = errors.New("filter_date must be YYYY-MM-DD")
)

// ErrChannelNotConfigured is the configuration failure for an empty webhook URL.
var ErrChannelNotConfigured = errors.New("channel not configured")

// Upstream failure causes.
var (
	ErrUpstreamTimeout   = errors.New("timeout")
	ErrUpstreamStatus    = errors.New("upstream returned non-success status")
	ErrUpstreamTransport = errors.New("upstream unreachable")
	ErrCircuitOpen       = errors.New("service unavailable: circuit breaker is open")
)

// UpstreamError wraps a failed call to the backend or a webhook.
// Cause is one of the ErrUpstream* sentinels or ErrCircuitOpen.
type UpstreamError struct {
	Op         string
	StatusCode int
	Cause      error
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %v (status %d)", e.Op, e.Cause, e.StatusCode)
	}
	if e.Err != nil && e.Err != e.Cause {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Cause, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *UpstreamError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Timeout reports whether the call ran out of time.
func (e *UpstreamError) Timeout() bool {
	return errors.Is(e.Cause, ErrUpstreamTimeout)
}

// newUpstreamError classifies err from an outbound call.
func newUpstreamError(op string, err error) *UpstreamError {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr
	}

	ue := &UpstreamError{Op: op, Err: err}

	var statusErr *webhook.StatusError
	switch {
	case errors.Is(err, ErrCircuitOpen):
		ue.Cause = ErrCircuitOpen
	case errors.As(err, &statusErr):
		ue.Cause = ErrUpstreamStatus
		ue.StatusCode = statusErr.StatusCode
	case isTimeout(err):
		ue.Cause = ErrUpstreamTimeout
	default:
		ue.Cause = ErrUpstreamTransport
	}
	return ue
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
