package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ppopeskul/wa-dashboard/internal/config"
)

// ErrWrongPassword is returned by Login for a bad dashboard password.
var ErrWrongPassword = errors.New("wrong password")

type contextKey string

const sessionKey contextKey = "dashboardSession"

// Manager binds sessions to browser cookies. The cookie carries an opaque
// token signed with the application secret; all state lives in the Store.
type Manager struct {
	store        Store
	logger       *zap.Logger
	cookieName   string
	secure       bool
	secret       []byte
	password     string
	passwordHash []byte
	defaultTheme string
	ttl          time.Duration
}

// NewManager creates a session manager.
func NewManager(cfg *config.DashboardConfig, ttl time.Duration, store Store, logger *zap.Logger) *Manager {
	theme := cfg.DefaultTheme
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return &Manager{
		store:        store,
		logger:       logger,
		cookieName:   cfg.CookieName,
		secure:       cfg.CookieSecure,
		secret:       []byte(cfg.SecretKey),
		password:     cfg.Password,
		passwordHash: []byte(cfg.PasswordHash),
		defaultTheme: theme,
		ttl:          ttl,
	}
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// Current returns the session bound to the request. Visitors without a valid
// cookie get an anonymous session with the default theme and an empty token.
func (m *Manager) Current(r *http.Request) (string, *Session) {
	if s, ok := fromContext(r.Context()); ok {
		return s.token, s.session
	}

	anonymous := &Session{Theme: m.defaultTheme}

	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return "", anonymous
	}
	token, ok := m.verify(cookie.Value)
	if !ok {
		return "", anonymous
	}

	s, err := m.store.Get(r.Context(), token)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			m.logger.Warn("Failed to load session", zap.Error(err))
		}
		return "", anonymous
	}
	if s.Theme == "" {
		s.Theme = m.defaultTheme
	}
	return token, s
}

// CheckPassword compares against the bcrypt hash when one is configured,
// otherwise against the plain password in constant time.
func (m *Manager) CheckPassword(password string) bool {
	if len(m.passwordHash) > 0 {
		return bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) == nil
	}
	if m.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(m.password), []byte(password)) == 1
}

// Login starts a logged-in session under a fresh token, keeping the visitor's theme.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, password string) (*Session, error) {
	if !m.CheckPassword(password) {
		return nil, ErrWrongPassword
	}

	oldToken, current := m.Current(r)
	s := &Session{LoggedIn: true, Theme: current.Theme}

	token := uuid.New().String()
	if err := m.store.Save(r.Context(), token, s); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	if oldToken != "" {
		if err := m.store.Delete(r.Context(), oldToken); err != nil {
			m.logger.Warn("Failed to drop previous session", zap.Error(err))
		}
	}

	m.setCookie(w, token)
	return s, nil
}

// Logout forgets the session and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	token, _ := m.Current(r)
	m.clearCookie(w)
	if token == "" {
		return nil
	}
	if err := m.store.Delete(r.Context(), token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ToggleTheme flips the stored theme and returns the new value.
func (m *Manager) ToggleTheme(w http.ResponseWriter, r *http.Request) (string, error) {
	token, s := m.Current(r)
	theme := ToggleTheme(s.Theme)
	if token == "" {
		return theme, nil
	}

	updated := *s
	updated.Theme = theme
	if err := m.store.Save(r.Context(), token, &updated); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	m.setCookie(w, token)
	return theme, nil
}

func (m *Manager) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    m.sign(token),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) sign(token string) string {
	return token + "." + m.mac(token)
}

func (m *Manager) verify(value string) (string, bool) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.mac(token))) {
		return "", false
	}
	return token, true
}

func (m *Manager) mac(token string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

type contextSession struct {
	token   string
	session *Session
}

// WithSession stores a loaded session in ctx so later handlers skip the store.
func WithSession(ctx context.Context, token string, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, contextSession{token: token, session: s})
}

// fromContext returns the session stored by WithSession.
func fromContext(ctx context.Context) (contextSession, bool) {
	s, ok := ctx.Value(sessionKey).(contextSession)
	return s, ok
}
