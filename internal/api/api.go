// Package api holds the HTTP models and chi server wiring for api/openapi.yaml.
// It follows oapi-codegen's chi-server layout and is maintained by hand.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

const (
	CookieAuthScopes = "cookieAuth.Scopes"
)

// Defines values for ChannelStatus.
const (
	Configured    ChannelStatus = "configured"
	NotConfigured ChannelStatus = "not_configured"
)

// Defines values for DispatchResponseOutcome.
const (
	RequiresTemplate DispatchResponseOutcome = "requires_template"
	Sent             DispatchResponseOutcome = "sent"
)

// Defines values for HealthResponseCircuitBreakerState.
const (
	Closed   HealthResponseCircuitBreakerState = "closed"
	HalfOpen HealthResponseCircuitBreakerState = "half-open"
	Open     HealthResponseCircuitBreakerState = "open"
)

// Defines values for HealthResponseSessionStoreStatus.
const (
	HealthResponseSessionStoreStatusConnected    HealthResponseSessionStoreStatus = "connected"
	HealthResponseSessionStoreStatusDisconnected HealthResponseSessionStoreStatus = "disconnected"
)

// Defines values for HealthResponseStatus.
const (
	Degraded  HealthResponseStatus = "degraded"
	Healthy   HealthResponseStatus = "healthy"
	Unhealthy HealthResponseStatus = "unhealthy"
)

// Defines values for SessionResponseTheme.
const (
	Dark  SessionResponseTheme = "dark"
	Light SessionResponseTheme = "light"
)

// CircuitBreakerInfo defines model for CircuitBreakerInfo.
type CircuitBreakerInfo struct {
	Channel  string                            `json:"channel"`
	Failures int                               `json:"failures"`
	Requests int                               `json:"requests"`
	State    HealthResponseCircuitBreakerState `json:"state"`
}

// ChannelStatus defines model for ChannelStatus.
type ChannelStatus string

// DispatchResponse defines model for DispatchResponse.
type DispatchResponse struct {
	// Message Human readable result
	Message string `json:"message"`

	// Outcome Dispatch result class
	Outcome DispatchResponseOutcome `json:"outcome"`

	// SessionActive False when the 24-hour window is closed and a template is required
	SessionActive bool `json:"session_active"`
	Success       bool `json:"success"`
}

// DispatchResponseOutcome Dispatch result class
type DispatchResponseOutcome string

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	// Error Machine readable error code
	Error string `json:"error"`

	// Message Human readable error message
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	CircuitBreakerState  *HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
	CircuitBreakerStatus *string                            `json:"circuit_breaker_status,omitempty"`
	CircuitBreakers      *[]CircuitBreakerInfo              `json:"circuit_breakers,omitempty"`
	FileChannel          ChannelStatus                      `json:"file_channel"`
	MessageChannel       ChannelStatus                      `json:"message_channel"`
	SessionStoreStatus   HealthResponseSessionStoreStatus   `json:"session_store_status"`
	Status               HealthResponseStatus               `json:"status"`
	Timestamp            time.Time                          `json:"timestamp"`
}

// HealthResponseCircuitBreakerState defines model for HealthResponse.CircuitBreakerState.
type HealthResponseCircuitBreakerState string

// HealthResponseSessionStoreStatus defines model for HealthResponse.SessionStoreStatus.
type HealthResponseSessionStoreStatus string

// HealthResponseStatus defines model for HealthResponse.Status.
type HealthResponseStatus string

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Password string `json:"password"`
}

// SendMessageRequest defines model for SendMessageRequest.
type SendMessageRequest struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// SendTemplateRequest defines model for SendTemplateRequest.
type SendTemplateRequest struct {
	ClientName *string  `json:"client_name,omitempty"`
	Phone      string   `json:"phone"`
	Variables  []string `json:"variables"`
}

// SessionResponse defines model for SessionResponse.
type SessionResponse struct {
	LoggedIn bool                 `json:"logged_in"`
	Theme    SessionResponseTheme `json:"theme"`
}

// SessionResponseTheme defines model for SessionResponse.Theme.
type SessionResponseTheme string

// SessionStatusResponse defines model for SessionStatusResponse.
type SessionStatusResponse struct {
	Phone         string `json:"phone"`
	SessionActive bool   `json:"session_active"`
}

// SetAlertRequest defines model for SetAlertRequest.
type SetAlertRequest struct {
	// HasAlert Defaults to true when omitted
	HasAlert *bool `json:"has_alert,omitempty"`
}

// ListContactsParams defines parameters for ListContacts.
type ListContactsParams struct {
	OnlyFollowUp *bool `form:"only_follow_up,omitempty" json:"only_follow_up,omitempty"`

	// FilterDate Keep contacts with a message on this day (YYYY-MM-DD, display timezone)
	FilterDate *string `form:"filter_date,omitempty" json:"filter_date,omitempty"`
}

// UpdateContactParams defines parameters for UpdateContact.
type UpdateContactParams struct {
	DisplayName *string `form:"display_name,omitempty" json:"display_name,omitempty"`
}

// GetConversationParams defines parameters for GetConversation.
type GetConversationParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

// SetAlertJSONRequestBody defines body for SetAlert for application/json ContentType.
type SetAlertJSONRequestBody = SetAlertRequest

// SendMessageJSONRequestBody defines body for SendMessage for application/json ContentType.
type SendMessageJSONRequestBody = SendMessageRequest

// SendTemplateJSONRequestBody defines body for SendTemplate for application/json ContentType.
type SendTemplateJSONRequestBody = SendTemplateRequest

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List contacts with alerts
	// (GET /api/alerts)
	ListAlerts(w http.ResponseWriter, r *http.Request)
	// Clear a contact's alert
	// (DELETE /api/alerts/{phone})
	DeleteAlert(w http.ResponseWriter, r *http.Request, phone string)
	// Get a contact's alert
	// (GET /api/alerts/{phone})
	GetAlert(w http.ResponseWriter, r *http.Request, phone string)
	// Set a contact's alert flag
	// (POST /api/alerts/{phone})
	SetAlert(w http.ResponseWriter, r *http.Request, phone string)
	// Get automation settings
	// (GET /api/automation/{phone})
	GetAutomation(w http.ResponseWriter, r *http.Request, phone string)
	// Update automation settings
	// (PATCH /api/automation/{phone})
	UpdateAutomation(w http.ResponseWriter, r *http.Request, phone string)
	// List contacts
	// (GET /api/contacts)
	ListContacts(w http.ResponseWriter, r *http.Request, params ListContactsParams)
	// Create a contact
	// (POST /api/contacts)
	CreateContact(w http.ResponseWriter, r *http.Request)
	// Rename a contact
	// (PATCH /api/contacts/{phone})
	UpdateContact(w http.ResponseWriter, r *http.Request, phone string, params UpdateContactParams)
	// Delete a conversation
	// (DELETE /api/conversation/{phone})
	DeleteConversation(w http.ResponseWriter, r *http.Request, phone string)
	// Get a page of a conversation
	// (GET /api/conversation/{phone})
	GetConversation(w http.ResponseWriter, r *http.Request, phone string, params GetConversationParams)
	// Current dashboard session
	// (GET /api/me)
	GetCurrentSession(w http.ResponseWriter, r *http.Request)
	// Delete a message
	// (DELETE /api/message/{msgId})
	DeleteMessage(w http.ResponseWriter, r *http.Request, msgId int)
	// Edit a message
	// (PATCH /api/message/{msgId})
	UpdateMessage(w http.ResponseWriter, r *http.Request, msgId int)
	// Send a file
	// (POST /api/send_file)
	SendFile(w http.ResponseWriter, r *http.Request)
	// Send a free-form message
	// (POST /api/send_message)
	SendMessage(w http.ResponseWriter, r *http.Request)
	// Send a template message
	// (POST /api/send_template)
	SendTemplate(w http.ResponseWriter, r *http.Request)
	// Check the messaging window
	// (GET /api/session/{phone})
	GetSessionStatus(w http.ResponseWriter, r *http.Request, phone string)
	// Health check
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// Log in
	// (POST /login)
	Login(w http.ResponseWriter, r *http.Request)
	// Log out
	// (POST /logout)
	Logout(w http.ResponseWriter, r *http.Request)
	// Toggle the display theme
	// (POST /api/toggle_theme)
	ToggleTheme(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

func withCookieAuth(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), CookieAuthScopes, []string{})
	return r.WithContext(ctx)
}

func (siw *ServerInterfaceWrapper) bindPhone(w http.ResponseWriter, r *http.Request) (string, bool) {
	// ------------- Path parameter "phone" -------------
	var phone string

	err := runtime.BindStyledParameterWithLocation("simple", false, "phone", runtime.ParamLocationPath, chi.URLParam(r, "phone"), &phone)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "phone", Err: err})
		return "", false
	}
	return phone, true
}

func (siw *ServerInterfaceWrapper) bindMsgId(w http.ResponseWriter, r *http.Request) (int, bool) {
	// ------------- Path parameter "msgId" -------------
	var msgId int

	err := runtime.BindStyledParameterWithLocation("simple", false, "msgId", runtime.ParamLocationPath, chi.URLParam(r, "msgId"), &msgId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "msgId", Err: err})
		return 0, false
	}
	return msgId, true
}

// ListAlerts operation middleware
func (siw *ServerInterfaceWrapper) ListAlerts(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListAlerts(w, r)
	})
}

// DeleteAlert operation middleware
func (siw *ServerInterfaceWrapper) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteAlert(w, r, phone)
	})
}

// GetAlert operation middleware
func (siw *ServerInterfaceWrapper) GetAlert(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAlert(w, r, phone)
	})
}

// SetAlert operation middleware
func (siw *ServerInterfaceWrapper) SetAlert(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SetAlert(w, r, phone)
	})
}

// GetAutomation operation middleware
func (siw *ServerInterfaceWrapper) GetAutomation(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAutomation(w, r, phone)
	})
}

// UpdateAutomation operation middleware
func (siw *ServerInterfaceWrapper) UpdateAutomation(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateAutomation(w, r, phone)
	})
}

// ListContacts operation middleware
func (siw *ServerInterfaceWrapper) ListContacts(w http.ResponseWriter, r *http.Request) {
	var err error
	r = withCookieAuth(r)

	// Parameter object where we will unmarshal all parameters from the context
	var params ListContactsParams

	// ------------- Optional query parameter "only_follow_up" -------------

	err = runtime.BindQueryParameter("form", true, false, "only_follow_up", r.URL.Query(), &params.OnlyFollowUp)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "only_follow_up", Err: err})
		return
	}

	// ------------- Optional query parameter "filter_date" -------------

	err = runtime.BindQueryParameter("form", true, false, "filter_date", r.URL.Query(), &params.FilterDate)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "filter_date", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListContacts(w, r, params)
	})
}

// CreateContact operation middleware
func (siw *ServerInterfaceWrapper) CreateContact(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateContact(w, r)
	})
}

// UpdateContact operation middleware
func (siw *ServerInterfaceWrapper) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var err error

	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateContactParams

	// ------------- Optional query parameter "display_name" -------------

	err = runtime.BindQueryParameter("form", true, false, "display_name", r.URL.Query(), &params.DisplayName)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "display_name", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateContact(w, r, phone, params)
	})
}

// DeleteConversation operation middleware
func (siw *ServerInterfaceWrapper) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteConversation(w, r, phone)
	})
}

// GetConversation operation middleware
func (siw *ServerInterfaceWrapper) GetConversation(w http.ResponseWriter, r *http.Request) {
	var err error

	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	// Parameter object where we will unmarshal all parameters from the context
	var params GetConversationParams

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetConversation(w, r, phone, params)
	})
}

// GetCurrentSession operation middleware
func (siw *ServerInterfaceWrapper) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCurrentSession(w, r)
	})
}

// DeleteMessage operation middleware
func (siw *ServerInterfaceWrapper) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	msgId, ok := siw.bindMsgId(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteMessage(w, r, msgId)
	})
}

// UpdateMessage operation middleware
func (siw *ServerInterfaceWrapper) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	msgId, ok := siw.bindMsgId(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateMessage(w, r, msgId)
	})
}

// SendFile operation middleware
func (siw *ServerInterfaceWrapper) SendFile(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SendFile(w, r)
	})
}

// SendMessage operation middleware
func (siw *ServerInterfaceWrapper) SendMessage(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SendMessage(w, r)
	})
}

// SendTemplate operation middleware
func (siw *ServerInterfaceWrapper) SendTemplate(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SendTemplate(w, r)
	})
}

// GetSessionStatus operation middleware
func (siw *ServerInterfaceWrapper) GetSessionStatus(w http.ResponseWriter, r *http.Request) {
	phone, ok := siw.bindPhone(w, r)
	if !ok {
		return
	}
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSessionStatus(w, r, phone)
	})
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	})
}

// Login operation middleware
func (siw *ServerInterfaceWrapper) Login(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Login(w, r)
	})
}

// Logout operation middleware
func (siw *ServerInterfaceWrapper) Logout(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Logout(w, r)
	})
}

// ToggleTheme operation middleware
func (siw *ServerInterfaceWrapper) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	r = withCookieAuth(r)

	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ToggleTheme(w, r)
	})
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/alerts", wrapper.ListAlerts)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/api/alerts/{phone}", wrapper.DeleteAlert)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/alerts/{phone}", wrapper.GetAlert)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/alerts/{phone}", wrapper.SetAlert)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/automation/{phone}", wrapper.GetAutomation)
	})
	r.Group(func(r chi.Router) {
		r.Patch(options.BaseURL+"/api/automation/{phone}", wrapper.UpdateAutomation)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/contacts", wrapper.ListContacts)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/contacts", wrapper.CreateContact)
	})
	r.Group(func(r chi.Router) {
		r.Patch(options.BaseURL+"/api/contacts/{phone}", wrapper.UpdateContact)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/api/conversation/{phone}", wrapper.DeleteConversation)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/conversation/{phone}", wrapper.GetConversation)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/me", wrapper.GetCurrentSession)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/api/message/{msgId}", wrapper.DeleteMessage)
	})
	r.Group(func(r chi.Router) {
		r.Patch(options.BaseURL+"/api/message/{msgId}", wrapper.UpdateMessage)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/send_file", wrapper.SendFile)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/send_message", wrapper.SendMessage)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/send_template", wrapper.SendTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/api/session/{phone}", wrapper.GetSessionStatus)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.GetHealth)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/login", wrapper.Login)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/logout", wrapper.Logout)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/api/toggle_theme", wrapper.ToggleTheme)
	})

	return r
}
