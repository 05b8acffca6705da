package service

import (
	"errors"

	"github.com/ppopeskul/wa-dashboard/internal/api"
)

// OutcomeKind is the result class of one dispatch attempt.
type OutcomeKind string

const (
	OutcomeSent             OutcomeKind = "sent"
	OutcomeRequiresTemplate OutcomeKind = "requires_template"
	OutcomeRejected         OutcomeKind = "rejected"
	OutcomeUpstreamFailure  OutcomeKind = "upstream_failure"
)

// Outcome is returned to the caller of a dispatch and is never persisted.
// Err is set for Rejected and UpstreamFailure.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
	Err    error
}

// SessionActive reports the gate result implied by the outcome.
// Only RequiresTemplate means the window was observed closed.
func (o Outcome) SessionActive() bool {
	return o.Kind != OutcomeRequiresTemplate
}

// Configuration reports whether the failure is an operator-correctable setup problem.
func (o Outcome) Configuration() bool {
	return errors.Is(o.Err, ErrChannelNotConfigured)
}

func sent() Outcome {
	return Outcome{Kind: OutcomeSent}
}

func requiresTemplate() Outcome {
	return Outcome{Kind: OutcomeRequiresTemplate, Reason: "session window closed, template required"}
}

func rejected(err error) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: err.Error(), Err: err}
}

func notConfigured() Outcome {
	return Outcome{Kind: OutcomeUpstreamFailure, Reason: ErrChannelNotConfigured.Error(), Err: ErrChannelNotConfigured}
}

func upstreamFailure(err *UpstreamError) Outcome {
	return Outcome{Kind: OutcomeUpstreamFailure, Reason: err.Cause.Error(), Err: err}
}

// BreakerStatus is a snapshot of one webhook channel's circuit breaker.
type BreakerStatus struct {
	Channel  string
	State    api.HealthResponseCircuitBreakerState
	Requests uint32
	Failures uint32
}

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SessionStoreStatus   api.HealthResponseSessionStoreStatus  `json:"session_store_status"`
	MessageChannel       api.ChannelStatus                     `json:"message_channel"`
	FileChannel          api.ChannelStatus                     `json:"file_channel"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	CircuitBreakers      []BreakerStatus                       `json:"circuit_breakers,omitempty"`
}
