// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Backend    BackendConfig    `mapstructure:"backend"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`
	Session    SessionConfig    `mapstructure:"session"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Display    DisplayConfig    `mapstructure:"display"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	MaxUploadMB  int64  `mapstructure:"max_upload_mb"`
}

// MaxUploadBytes is the size cap for /api/send_file bodies.
func (c ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// BackendConfig describes the remote API that owns contacts, conversations,
// alerts and automation flags. Timeouts are in seconds.
type BackendConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	GateTimeout  int    `mapstructure:"gate_timeout"`
	LogTimeout   int    `mapstructure:"log_timeout"`
	ProxyTimeout int    `mapstructure:"proxy_timeout"`
	AlertTimeout int    `mapstructure:"alert_timeout"`
}

type WebhookConfig struct {
	MessageURL     string               `mapstructure:"message_url"`
	FileURL        string               `mapstructure:"file_url"`
	Timeout        int                  `mapstructure:"timeout"`
	FileTimeout    int                  `mapstructure:"file_timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type DashboardConfig struct {
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"`
	SecretKey    string `mapstructure:"secret_key"`
	CookieName   string `mapstructure:"cookie_name"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
	DefaultTheme string `mapstructure:"default_theme"`
}

type SessionConfig struct {
	Backend       string `mapstructure:"backend"`
	TTLHours      int    `mapstructure:"ttl_hours"`
	SweepInterval int    `mapstructure:"sweep_interval_minutes"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DisplayConfig struct {
	Timezone string `mapstructure:"timezone"`
}

type MiddlewareConfig struct {
	RateLimit          int      `mapstructure:"rate_limit"`
	RateLimitBurst     int      `mapstructure:"rate_limit_burst"`
	EnableCORS         bool     `mapstructure:"enable_cors"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	RequestTimeout     int      `mapstructure:"request_timeout"`
	GuardContactUpdate bool     `mapstructure:"guard_contact_update"`
}

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

var (
	ErrMissingSecretKey = errors.New("SECRET_KEY environment variable is required")
	ErrMissingPassword  = errors.New("DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH is required")
	ErrUnknownBackend   = errors.New("unknown session backend")
)

// envBindings keeps the variable names the dashboard has always been deployed with.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"backend.base_url":        "API_BASE",
	"webhook.message_url":     "MAKE_WEBHOOK_URL",
	"webhook.file_url":        "MAKE_FILE_WEBHOOK_URL",
	"dashboard.password":      "DASHBOARD_PASSWORD",
	"dashboard.password_hash": "DASHBOARD_PASSWORD_HASH",
	"dashboard.secret_key":    "SECRET_KEY",
	"session.backend":         "SESSION_BACKEND",
	"redis.addr":              "REDIS_ADDR",
	"redis.password":          "REDIS_PASSWORD",
	"display.timezone":        "DISPLAY_TIMEZONE",
}

// LoadConfig reads configPath when it exists and overlays environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 90)
	v.SetDefault("server.max_upload_mb", 100)
	v.SetDefault("backend.gate_timeout", 10)
	v.SetDefault("backend.log_timeout", 10)
	v.SetDefault("backend.proxy_timeout", 30)
	v.SetDefault("backend.alert_timeout", 10)
	v.SetDefault("webhook.timeout", 30)
	v.SetDefault("webhook.file_timeout", 60)
	v.SetDefault("webhook.circuit_breaker.max_requests", 3)
	v.SetDefault("webhook.circuit_breaker.interval", 60)
	v.SetDefault("webhook.circuit_breaker.timeout", 60)
	v.SetDefault("webhook.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("webhook.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("dashboard.cookie_name", "dashboard_session")
	v.SetDefault("dashboard.default_theme", "dark")
	v.SetDefault("session.backend", SessionBackendMemory)
	v.SetDefault("session.ttl_hours", 24*7)
	v.SetDefault("session.sweep_interval_minutes", 10)
	v.SetDefault("session.key_prefix", "dashboard:session:")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("display.timezone", "Asia/Kolkata")
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 90)
	v.SetDefault("middleware.guard_contact_update", false)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the server cannot start without.
// Webhook URLs are optional: dispatch reports them as not configured.
func (c *Config) Validate() error {
	if c.Dashboard.SecretKey == "" {
		return ErrMissingSecretKey
	}
	if c.Dashboard.Password == "" && c.Dashboard.PasswordHash == "" {
		return ErrMissingPassword
	}
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Session.Backend)
	}
	return nil
}

// Seconds converts a configured number of seconds into a duration.
func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// SessionTTL returns how long an idle dashboard session stays valid.
func (s *SessionConfig) SessionTTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// Truncate shortens a secret-bearing URL for startup logs.
func Truncate(s string, n int) string {
	if s == "" {
		return "NOT SET"
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
