// Package models defines data structures used throughout the application.
package models

// Values recorded for every message the dashboard operator sends.
const (
	DirectionDashboard = "Dashboard User"
	HandledByDashboard = "Dashboard User"
)

// Payload types understood by the outbound messaging webhook.
const (
	PayloadTypeText     = "text"
	PayloadTypeTemplate = "template"
	PayloadTypeDocument = "document"
)

// TextMessage is a free-form message the operator wants to send.
type TextMessage struct {
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// TemplateMessage is a pre-approved template send used outside the session window.
type TemplateMessage struct {
	Phone      string   `json:"phone" validate:"required"`
	ClientName string   `json:"client_name"`
	Variables  []string `json:"variables" validate:"required,min=1"`
}

// WebhookTextRequest is posted to the messaging webhook for a free-form send.
type WebhookTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// WebhookTemplateRequest is posted to the messaging webhook for a template send.
type WebhookTemplateRequest struct {
	Phone      string   `json:"phone"`
	ClientName string   `json:"client_name"`
	Variables  []string `json:"variables"`
	Type       string   `json:"type"`
}

// MessageLog is the record written to the backend's /log_message endpoint.
// It is created once per send and never changed by this service.
type MessageLog struct {
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	Direction      string `json:"direction"`
	FollowUpNeeded bool   `json:"follow_up_needed"`
	Notes          string `json:"notes"`
	HandledBy      string `json:"handled_by"`
}

// TemplateLog is the record written to /api/log_template_message.
type TemplateLog struct {
	Phone      string `json:"phone"`
	ClientName string `json:"client_name"`
	Message    string `json:"message"`
}

// SessionStatus is the backend's answer for one conversation's messaging window.
// A nil SessionActive means the field was missing from the response.
type SessionStatus struct {
	SessionActive *bool `json:"session_active"`
}
