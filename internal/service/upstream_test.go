package service_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/models"
	"github.com/ppopeskul/wa-dashboard/internal/service"
	"github.com/ppopeskul/wa-dashboard/internal/webhook"
)

const (
	messageHookPath = "/hook/message"
	fileHookPath    = "/hook/file"
)

// fakeUpstream plays both the backend API and the two webhooks, counting
// every request it receives.
type fakeUpstream struct {
	t      *testing.T
	server *httptest.Server

	mu            sync.Mutex
	calls         map[string]int
	sessionStatus int
	sessionBody   string
	hookStatus    int
	fileStatus    int
	logStatus     int
	logHang       bool
	hookHang      bool
	messageLogs   []models.MessageLog
	templateLogs  []models.TemplateLog
	hookBodies    []map[string]any
	fileUploads   []fileUpload
}

type fileUpload struct {
	Phone       string
	Type        string
	Name        string
	ContentType string
	Content     string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()

	u := &fakeUpstream{
		t:             t,
		calls:         make(map[string]int),
		sessionStatus: http.StatusOK,
		sessionBody:   `{"session_active": true}`,
		hookStatus:    http.StatusOK,
		fileStatus:    http.StatusOK,
		logStatus:     http.StatusOK,
	}
	u.server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.server.Close)
	return u
}

func (u *fakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	key := r.URL.Path
	if strings.HasPrefix(key, "/session/") {
		key = "/session/"
	}
	u.calls[key]++
	u.mu.Unlock()

	switch {
	case key == "/session/":
		u.mu.Lock()
		status, body := u.sessionStatus, u.sessionBody
		u.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)

	case r.URL.Path == "/log_message":
		var entry models.MessageLog
		if !assert.NoError(u.t, json.NewDecoder(r.Body).Decode(&entry)) {
			return
		}
		u.mu.Lock()
		u.messageLogs = append(u.messageLogs, entry)
		status, hang := u.logStatus, u.logHang
		u.mu.Unlock()
		if hang {
			<-r.Context().Done()
			return
		}
		w.WriteHeader(status)

	case r.URL.Path == "/api/log_template_message":
		var entry models.TemplateLog
		if !assert.NoError(u.t, json.NewDecoder(r.Body).Decode(&entry)) {
			return
		}
		u.mu.Lock()
		u.templateLogs = append(u.templateLogs, entry)
		status := u.logStatus
		u.mu.Unlock()
		w.WriteHeader(status)

	case r.URL.Path == messageHookPath:
		var body map[string]any
		if !assert.NoError(u.t, json.NewDecoder(r.Body).Decode(&body)) {
			return
		}
		u.mu.Lock()
		u.hookBodies = append(u.hookBodies, body)
		status, hang := u.hookStatus, u.hookHang
		u.mu.Unlock()
		if hang {
			<-r.Context().Done()
			return
		}
		w.WriteHeader(status)

	case r.URL.Path == fileHookPath:
		if !assert.NoError(u.t, r.ParseMultipartForm(1<<20)) {
			return
		}
		file, header, err := r.FormFile("file")
		if !assert.NoError(u.t, err) {
			return
		}
		content, err := io.ReadAll(file)
		if !assert.NoError(u.t, err) {
			return
		}
		u.mu.Lock()
		u.fileUploads = append(u.fileUploads, fileUpload{
			Phone:       r.FormValue("phone"),
			Type:        r.FormValue("type"),
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     string(content),
		})
		status := u.fileStatus
		u.mu.Unlock()
		w.WriteHeader(status)

	default:
		http.NotFound(w, r)
	}
}

func (u *fakeUpstream) callCount(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

func (u *fakeUpstream) totalCalls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := 0
	for _, n := range u.calls {
		total += n
	}
	return total
}

func (u *fakeUpstream) hooks() []map[string]any {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]map[string]any(nil), u.hookBodies...)
}

func (u *fakeUpstream) messageLogEntries() []models.MessageLog {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.MessageLog(nil), u.messageLogs...)
}

func (u *fakeUpstream) templateLogEntries() []models.TemplateLog {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.TemplateLog(nil), u.templateLogs...)
}

func (u *fakeUpstream) uploads() []fileUpload {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]fileUpload(nil), u.fileUploads...)
}

func (u *fakeUpstream) set(fn func(u *fakeUpstream)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(u)
}

func (u *fakeUpstream) backendConfig() config.BackendConfig {
	return config.BackendConfig{
		BaseURL:      u.server.URL,
		GateTimeout:  5,
		LogTimeout:   1,
		ProxyTimeout: 5,
		AlertTimeout: 5,
	}
}

func (u *fakeUpstream) webhookConfig() config.WebhookConfig {
	return config.WebhookConfig{
		MessageURL:  u.server.URL + messageHookPath,
		FileURL:     u.server.URL + fileHookPath,
		Timeout:     5,
		FileTimeout: 5,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      1,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.5,
			ConsecutiveFails: 3,
		},
	}
}

func (u *fakeUpstream) client() backend.Client {
	cfg := u.backendConfig()
	return backend.NewClient(&cfg, u.server.Client(), zap.NewNop())
}

var fixedNow = time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)

// newDispatch wires a dispatch service against u. edit may adjust the
// webhook config before wiring.
func newDispatch(u *fakeUpstream, edit func(cfg *config.WebhookConfig)) service.DispatchService {
	cfg := u.webhookConfig()
	if edit != nil {
		edit(&cfg)
	}

	logger := zap.NewNop()
	client := u.client()
	sender := webhook.NewSender(&cfg, u.server.Client(), logger)
	gate := service.NewGateService(client, logger)
	return service.NewDispatchService(&cfg, client, sender, gate, func() time.Time { return fixedNow }, logger)
}
