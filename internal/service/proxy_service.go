package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ppopeskul/wa-dashboard/internal/backend"
	"github.com/ppopeskul/wa-dashboard/internal/config"
	"github.com/ppopeskul/wa-dashboard/internal/displaytime"
)

const (
	// filterScanLimit is how many messages are inspected per contact for filter_date.
	filterScanLimit = 100

	fieldLastTime  = "last_time"
	fieldTimestamp = "timestamp"
	fieldPhone     = "phone"
)

type proxyService struct {
	backend      backend.Client
	clock        *displaytime.Converter
	proxyTimeout time.Duration
	alertTimeout time.Duration
	logger       *zap.Logger
}

func NewProxyService(cfg *config.BackendConfig, client backend.Client, clock *displaytime.Converter, logger *zap.Logger) ProxyService {
	return &proxyService{
		backend:      client,
		clock:        clock,
		proxyTimeout: config.Seconds(cfg.ProxyTimeout),
		alertTimeout: config.Seconds(cfg.AlertTimeout),
		logger:       logger,
	}
}

// ListContacts fetches contacts, renders last_time in the display zone and,
// when filterDate is set, keeps only contacts with a message on that day.
// Contacts are checked one at a time.
func (s *proxyService) ListContacts(ctx context.Context, onlyFollowUp bool, filterDate string) (*backend.Response, error) {
	var day time.Time
	if filterDate != "" {
		var err error
		day, err = time.ParseInLocation(time.DateOnly, filterDate, s.clock.Location())
		if err != nil {
			return nil, ErrInvalidFilterDate
		}
	}

	resp, err := s.Forward(ctx, &backend.Request{
		Method: http.MethodGet,
		Path:   "/contacts",
		Query:  url.Values{"only_follow_up": {strconv.FormatBool(onlyFollowUp)}},
	})
	if err != nil || !resp.OK() {
		return resp, err
	}

	contacts, ok := s.decodeList(resp.Body)
	if !ok {
		return resp, nil
	}

	filtered := contacts[:0]
	for _, contact := range contacts {
		if v, present := contact[fieldLastTime]; present {
			contact[fieldLastTime] = s.clock.Format(v)
		}
		if filterDate == "" || s.hasMessageOn(ctx, contact, day) {
			filtered = append(filtered, contact)
		}
	}

	return s.encodeList(resp, filtered), nil
}

// hasMessageOn keeps the contact whenever its conversation cannot be read.
func (s *proxyService) hasMessageOn(ctx context.Context, contact map[string]any, day time.Time) bool {
	phone, ok := contact[fieldPhone].(string)
	if !ok || phone == "" {
		return true
	}

	resp, err := s.backend.Do(ctx, &backend.Request{
		Method:  http.MethodGet,
		Path:    "/conversation/" + url.PathEscape(phone),
		Query:   pageQuery(filterScanLimit, 0),
		Timeout: s.alertTimeout,
	})
	if err != nil || !resp.OK() {
		s.logger.Warn("Failed to check conversation for date filter, keeping contact",
			zap.String("phone", phone),
			zap.Error(err))
		return true
	}

	messages, ok := s.decodeList(resp.Body)
	if !ok {
		return true
	}

	want := day.Format(time.DateOnly)
	for _, msg := range messages {
		value, present := msg[fieldTimestamp]
		if !present {
			s.logger.Warn("Message without timestamp in date filter, keeping contact",
				zap.String("phone", phone))
			return true
		}
		// Unparseable timestamps read as now, like every other rendered timestamp.
		raw, _ := value.(string)
		if s.clock.Convert(raw).Format(time.DateOnly) == want {
			return true
		}
	}
	return false
}

// GetConversation returns one page of messages with timestamps in the display zone.
func (s *proxyService) GetConversation(ctx context.Context, phone string, limit, offset int) (*backend.Response, error) {
	resp, err := s.Forward(ctx, &backend.Request{
		Method: http.MethodGet,
		Path:   "/conversation/" + url.PathEscape(phone),
		Query:  pageQuery(limit, offset),
	})
	if err != nil || !resp.OK() {
		return resp, err
	}

	messages, ok := s.decodeList(resp.Body)
	if !ok {
		return resp, nil
	}
	for _, msg := range messages {
		if v, present := msg[fieldTimestamp]; present {
			msg[fieldTimestamp] = s.clock.Format(v)
		}
	}
	return s.encodeList(resp, messages), nil
}

// Forward passes req through verbatim with the default proxy timeout.
func (s *proxyService) Forward(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	if req.Timeout == 0 {
		req.Timeout = s.proxyTimeout
	}
	resp, err := s.backend.Do(ctx, req)
	if err != nil {
		return nil, newUpstreamError(req.Method+" "+req.Path, err)
	}
	return resp, nil
}

// ForwardAlert is Forward with the shorter alert timeout.
func (s *proxyService) ForwardAlert(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	req.Timeout = s.alertTimeout
	return s.Forward(ctx, req)
}

// decodeList reads a JSON array of objects, keeping numbers exact.
func (s *proxyService) decodeList(body []byte) ([]map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var items []map[string]any
	if err := dec.Decode(&items); err != nil {
		s.logger.Debug("Upstream body is not a list of objects, passing through", zap.Error(err))
		return nil, false
	}
	return items, true
}

func (s *proxyService) encodeList(resp *backend.Response, items []map[string]any) *backend.Response {
	if items == nil {
		items = []map[string]any{}
	}
	body, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("Failed to re-encode upstream list", zap.Error(err))
		return resp
	}
	return &backend.Response{
		StatusCode:  resp.StatusCode,
		ContentType: "application/json",
		Body:        body,
	}
}

func pageQuery(limit, offset int) url.Values {
	return url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
}
