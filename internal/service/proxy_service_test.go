package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/displaytime"
	"github.com/ppopeskul/wa-dashboard/internal/service"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

type proxyFixture struct {
	svc service.ProxyService

	mu       sync.Mutex
	requests []recordedRequest
}

func (f *proxyFixture) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// newProxyFixture serves routes on a chi router and records every request.
func newProxyFixture(t *testing.T, routes func(r chi.Router)) *proxyFixture {
	t.Helper()
	return newProxyFixtureAt(t, time.Now, routes)
}

// newProxyFixtureAt pins the display clock to now.
func newProxyFixtureAt(t *testing.T, now func() time.Time, routes func(r chi.Router)) *proxyFixture {
	t.Helper()

	f := &proxyFixture{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			f.mu.Lock()
			f.requests = append(f.requests, recordedRequest{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  r.URL.Query(),
				Body:   string(body),
			})
			f.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	routes(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	cfg := &config.BackendConfig{
		BaseURL:      server.URL,
		ProxyTimeout: 5,
		AlertTimeout: 5,
	}
	client := backend.NewClient(cfg, server.Client(), zap.NewNop())
	f.svc = service.NewProxyService(cfg, client, displaytime.NewConverterWithClock(displaytime.IST(), now), zap.NewNop())
	return f
}

func writeJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestProxyService_ListContacts_TranslatesLastTime(t *testing.T) {
	f := newProxyFixture(t, func(r chi.Router) {
		r.Get("/contacts", writeJSON(http.StatusOK, `[
			{"phone": "919999999999", "name": "Asha", "last_time": "2024-01-01T00:00:00Z", "unread": 12345678901234567890},
			{"phone": "918888888888", "name": "Ravi"}
		]`))
	})

	resp, err := f.svc.ListContacts(context.Background(), true, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `[
		{"phone": "919999999999", "name": "Asha", "last_time": "2024-01-01T05:30:00+05:30", "unread": 12345678901234567890},
		{"phone": "918888888888", "name": "Ravi"}
	]`, string(resp.Body))
	assert.Contains(t, string(resp.Body), "12345678901234567890")

	requests := f.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "true", requests[0].Query.Get("only_follow_up"))
}

func TestProxyService_ListContacts_FilterDate(t *testing.T) {
	f := newProxyFixture(t, func(r chi.Router) {
		r.Get("/contacts", writeJSON(http.StatusOK, `[
			{"phone": "911111111111"},
			{"phone": "912222222222"},
			{"phone": "913333333333"},
			{"name": "no phone"}
		]`))
		// 20:00 UTC on the 9th is 01:30 IST on the 10th.
		r.Get("/conversation/911111111111", writeJSON(http.StatusOK, `[
			{"message": "hi", "timestamp": "2024-03-09T20:00:00Z"}
		]`))
		r.Get("/conversation/912222222222", writeJSON(http.StatusOK, `[
			{"message": "hi", "timestamp": "2024-03-09T10:00:00Z"},
			{"message": "bad", "timestamp": ""}
		]`))
		r.Get("/conversation/913333333333", writeJSON(http.StatusInternalServerError, `{}`))
	})

	resp, err := f.svc.ListContacts(context.Background(), false, "2024-03-10")
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"phone": "911111111111"},
		{"phone": "913333333333"},
		{"name": "no phone"}
	]`, string(resp.Body))

	requests := f.recorded()
	require.Len(t, requests, 4)
	assert.Equal(t, "false", requests[0].Query.Get("only_follow_up"))
	for _, req := range requests[1:] {
		assert.Equal(t, "100", req.Query.Get("limit"))
		assert.Equal(t, "0", req.Query.Get("offset"))
	}
}

func TestProxyService_ListContacts_FilterDateFallbacks(t *testing.T) {
	// 22:00 UTC on the 9th is the 10th in IST.
	now := func() time.Time { return time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC) }
	f := newProxyFixtureAt(t, now, func(r chi.Router) {
		r.Get("/contacts", writeJSON(http.StatusOK, `[
			{"phone": "911111111111"},
			{"phone": "912222222222"},
			{"phone": "913333333333"},
			{"phone": "914444444444"}
		]`))
		r.Get("/conversation/911111111111", writeJSON(http.StatusOK, `[
			{"message": "garbled", "timestamp": "not a time"}
		]`))
		r.Get("/conversation/912222222222", writeJSON(http.StatusOK, `[
			{"message": "no timestamp"}
		]`))
		r.Get("/conversation/913333333333", writeJSON(http.StatusOK, `[
			{"message": "old", "timestamp": "2024-03-01T10:00:00Z"}
		]`))
		r.Get("/conversation/914444444444", writeJSON(http.StatusOK, `[
			{"message": "numeric", "timestamp": 1710000000}
		]`))
	})

	today, err := f.svc.ListContacts(context.Background(), false, "2024-03-10")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"phone": "911111111111"},
		{"phone": "912222222222"},
		{"phone": "914444444444"}
	]`, string(today.Body))

	earlier, err := f.svc.ListContacts(context.Background(), false, "2024-03-01")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"phone": "912222222222"},
		{"phone": "913333333333"}
	]`, string(earlier.Body))
}

func TestProxyService_ListContacts_InvalidFilterDate(t *testing.T) {
	f := newProxyFixture(t, func(r chi.Router) {
		r.Get("/contacts", writeJSON(http.StatusOK, `[]`))
	})

	_, err := f.svc.ListContacts(context.Background(), false, "10/03/2024")

	assert.ErrorIs(t, err, service.ErrInvalidFilterDate)
	assert.Empty(t, f.recorded())
}

func TestProxyService_ListContacts_Passthrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "error status", status: http.StatusServiceUnavailable, body: `{"error": "down"}`},
		{name: "object body", status: http.StatusOK, body: `{"contacts": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProxyFixture(t, func(r chi.Router) {
				r.Get("/contacts", writeJSON(tt.status, tt.body))
			})

			resp, err := f.svc.ListContacts(context.Background(), false, "")
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, string(resp.Body))
		})
	}
}

func TestProxyService_GetConversation(t *testing.T) {
	f := newProxyFixture(t, func(r chi.Router) {
		r.Get("/conversation/{phone}", writeJSON(http.StatusOK, `[
			{"id": 1, "message": "hi", "timestamp": "2024-01-01T00:00:00Z"},
			{"id": 2, "message": "naive", "timestamp": "2024-01-01 12:00:00"},
			{"id": 3, "message": "no time"}
		]`))
	})

	resp, err := f.svc.GetConversation(context.Background(), "919999999999", 20, 40)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id": 1, "message": "hi", "timestamp": "2024-01-01T05:30:00+05:30"},
		{"id": 2, "message": "naive", "timestamp": "2024-01-01T17:30:00+05:30"},
		{"id": 3, "message": "no time"}
	]`, string(resp.Body))

	requests := f.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/conversation/919999999999", requests[0].Path)
	assert.Equal(t, "20", requests[0].Query.Get("limit"))
	assert.Equal(t, "40", requests[0].Query.Get("offset"))
}

func TestProxyService_Forward(t *testing.T) {
	f := newProxyFixture(t, func(r chi.Router) {
		r.Patch("/automation/{phone}", writeJSON(http.StatusAccepted, `{"ok": true}`))
		r.Post("/alerts/{phone}", writeJSON(http.StatusOK, `{"has_alert": false}`))
	})

	resp, err := f.svc.Forward(context.Background(), &backend.Request{
		Method: http.MethodPatch,
		Path:   "/automation/919999999999",
		Body:   []byte(`{"enabled": false}`),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, `{"ok": true}`, string(resp.Body))

	resp, err = f.svc.ForwardAlert(context.Background(), &backend.Request{
		Method: http.MethodPost,
		Path:   "/alerts/919999999999",
		Query:  url.Values{"has_alert": {"false"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	requests := f.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, `{"enabled": false}`, requests[0].Body)
	assert.Equal(t, "false", requests[1].Query.Get("has_alert"))
}

func TestProxyService_Forward_Unreachable(t *testing.T) {
	cfg := &config.BackendConfig{BaseURL: "http://127.0.0.1:1", ProxyTimeout: 1}
	client := backend.NewClient(cfg, nil, zap.NewNop())
	svc := service.NewProxyService(cfg, client, displaytime.NewConverterWithClock(displaytime.IST(), time.Now), zap.NewNop())

	_, err := svc.Forward(context.Background(), &backend.Request{Method: http.MethodGet, Path: "/contacts"})

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUpstreamTransport)

	var upstreamErr *service.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "GET /contacts", upstreamErr.Op)
}
