package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/api"
	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/middleware"
	"github.com/ppopeskul/wa-dashboard/internal/service"
)

const (
	defaultConversationLimit = 50
	maxProxyBodyBytes        = 1 << 20
)

// ListContacts implements api.ServerInterface.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request, params api.ListContactsParams) {
	onlyFollowUp := params.OnlyFollowUp != nil && *params.OnlyFollowUp

	var filterDate string
	if params.FilterDate != nil {
		filterDate = *params.FilterDate
	}

	resp, err := h.service.Proxy.ListContacts(r.Context(), onlyFollowUp, filterDate)
	if errors.Is(err, service.ErrInvalidFilterDate) {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, err.Error())
		return
	}
	h.writeUpstream(w, r, resp, err)
}

// CreateContact implements api.ServerInterface.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	h.forwardWithBody(w, r, http.MethodPost, "/contacts")
}

// UpdateContact implements api.ServerInterface.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request, phone string, params api.UpdateContactParams) {
	query := url.Values{}
	if params.DisplayName != nil {
		query.Set("display_name", *params.DisplayName)
	}

	resp, err := h.service.Proxy.Forward(r.Context(), &backend.Request{
		Method: http.MethodPatch,
		Path:   "/contacts/" + url.PathEscape(phone),
		Query:  query,
	})
	h.writeUpstream(w, r, resp, err)
}

// GetConversation implements api.ServerInterface.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request, phone string, params api.GetConversationParams) {
	limit := defaultConversationLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}
	offset := 0
	if params.Offset != nil && *params.Offset > 0 {
		offset = *params.Offset
	}

	resp, err := h.service.Proxy.GetConversation(r.Context(), phone, limit, offset)
	h.writeUpstream(w, r, resp, err)
}

// DeleteConversation implements api.ServerInterface.
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, phone string) {
	h.forward(w, r, http.MethodDelete, "/conversation/"+url.PathEscape(phone))
}

// DeleteMessage implements api.ServerInterface.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, msgId int) {
	h.forward(w, r, http.MethodDelete, "/message/"+strconv.Itoa(msgId))
}

// UpdateMessage implements api.ServerInterface.
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request, msgId int) {
	h.forwardWithBody(w, r, http.MethodPatch, "/message/"+strconv.Itoa(msgId))
}

// GetAutomation implements api.ServerInterface.
func (h *Handler) GetAutomation(w http.ResponseWriter, r *http.Request, phone string) {
	h.forward(w, r, http.MethodGet, "/automation/"+url.PathEscape(phone))
}

// UpdateAutomation implements api.ServerInterface.
func (h *Handler) UpdateAutomation(w http.ResponseWriter, r *http.Request, phone string) {
	h.forwardWithBody(w, r, http.MethodPatch, "/automation/"+url.PathEscape(phone))
}

// ListAlerts implements api.ServerInterface.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	h.forwardAlert(w, r, &backend.Request{Method: http.MethodGet, Path: "/alerts"})
}

// GetAlert implements api.ServerInterface.
func (h *Handler) GetAlert(w http.ResponseWriter, r *http.Request, phone string) {
	h.forwardAlert(w, r, &backend.Request{Method: http.MethodGet, Path: "/alerts/" + url.PathEscape(phone)})
}

// SetAlert implements api.ServerInterface. The backend takes the flag as a
// query parameter; an empty body means true.
func (h *Handler) SetAlert(w http.ResponseWriter, r *http.Request, phone string) {
	var req api.SetAlertJSONRequestBody
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}

	hasAlert := true
	if req.HasAlert != nil {
		hasAlert = *req.HasAlert
	}

	h.forwardAlert(w, r, &backend.Request{
		Method: http.MethodPost,
		Path:   "/alerts/" + url.PathEscape(phone),
		Query:  url.Values{"has_alert": {strconv.FormatBool(hasAlert)}},
	})
}

// DeleteAlert implements api.ServerInterface.
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request, phone string) {
	h.forwardAlert(w, r, &backend.Request{Method: http.MethodDelete, Path: "/alerts/" + url.PathEscape(phone)})
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, method, path string) {
	resp, err := h.service.Proxy.Forward(r.Context(), &backend.Request{Method: method, Path: path})
	h.writeUpstream(w, r, resp, err)
}

func (h *Handler) forwardWithBody(w http.ResponseWriter, r *http.Request, method, path string) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxProxyBodyBytes))
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, middleware.ErrorCodeInvalidRequest, errorMessageInvalidBody)
		return
	}
	if len(body) == 0 {
		body = nil
	}

	resp, err := h.service.Proxy.Forward(r.Context(), &backend.Request{Method: method, Path: path, Body: body})
	h.writeUpstream(w, r, resp, err)
}

func (h *Handler) forwardAlert(w http.ResponseWriter, r *http.Request, req *backend.Request) {
	resp, err := h.service.Proxy.ForwardAlert(r.Context(), req)
	h.writeUpstream(w, r, resp, err)
}

// writeUpstream copies the backend's status and body to the browser.
func (h *Handler) writeUpstream(w http.ResponseWriter, r *http.Request, resp *backend.Response, err error) {
	if err != nil {
		h.logger.Error("Backend request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))

		message := errorMessageBackend
		var upstreamErr *service.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Timeout() {
			message = errorMessageBackendTimeout
		}
		h.sendUpstreamError(w, r, err, message)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		h.logger.Warn("Failed to write proxied response", zap.Error(err))
	}
}
