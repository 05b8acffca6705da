// Package session keeps the per-browser dashboard state: whether the visitor
// has entered the dashboard password and which theme they picked.
package session

import (
	"context"
	"errors"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ErrSessionNotFound is returned for unknown or expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// Session is the state stored against one session token.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Theme    string `json:"theme"`
}

// Store maps session tokens to sessions.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, token string, s *Session) error
	Delete(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

// ToggleTheme flips between the dark and light themes.
func ToggleTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
