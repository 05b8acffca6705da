package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/ppopeskul/wa-dashboard/internal/api"
)

// Common error codes used by middleware and handlers
const (
	ErrorCodeInternal           = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout     = "REQUEST_TIMEOUT"
	ErrorCodeUnauthorized       = "UNAUTHORIZED"
	ErrorCodeInvalidRequest     = "INVALID_REQUEST"
	ErrorCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrorCodeNotConfigured      = "CHANNEL_NOT_CONFIGURED"
	ErrorCodeUpstream           = "UPSTREAM_ERROR"
	ErrorCodeUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	ErrorCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Common error messages used by middleware
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
	ErrorMessageUnauthorized      = "Login required"
)

// WriteError renders an api.ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}
