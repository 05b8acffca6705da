package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppopeskul/wa-dashboard/internal/config"
)

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DASHBOARD_PASSWORD", "letmein")
	t.Setenv("API_BASE", "http://backend.local")
	t.Setenv("MAKE_WEBHOOK_URL", "http://hook.local/reply")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://backend.local", cfg.Backend.BaseURL)
	assert.Equal(t, "http://hook.local/reply", cfg.Webhook.MessageURL)
	assert.Empty(t, cfg.Webhook.FileURL)
	assert.Equal(t, 10, cfg.Backend.GateTimeout)
	assert.Equal(t, 30, cfg.Webhook.Timeout)
	assert.Equal(t, 60, cfg.Webhook.FileTimeout)
	assert.Equal(t, "Asia/Kolkata", cfg.Display.Timezone)
	assert.Equal(t, config.SessionBackendMemory, cfg.Session.Backend)
	assert.False(t, cfg.Middleware.GuardContactUpdate)
	assert.Equal(t, int64(100<<20), cfg.Server.MaxUploadBytes())
}

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
backend:
  base_url: http://from-file
  gate_timeout: 5
dashboard:
  password: filepass
  secret_key: filesecret
session:
  backend: redis
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("API_BASE", "http://from-env")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "http://from-env", cfg.Backend.BaseURL)
	assert.Equal(t, 5, cfg.Backend.GateTimeout)
	assert.Equal(t, config.SessionBackendRedis, cfg.Session.Backend)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: config.Config{
				Dashboard: config.DashboardConfig{Password: "p", SecretKey: "k"},
				Session:   config.SessionConfig{Backend: config.SessionBackendMemory},
			},
		},
		{
			name: "hash only",
			cfg: config.Config{
				Dashboard: config.DashboardConfig{PasswordHash: "$2a$10$x", SecretKey: "k"},
				Session:   config.SessionConfig{Backend: config.SessionBackendRedis},
			},
		},
		{
			name: "missing secret key",
			cfg: config.Config{
				Dashboard: config.DashboardConfig{Password: "p"},
				Session:   config.SessionConfig{Backend: config.SessionBackendMemory},
			},
			wantErr: config.ErrMissingSecretKey,
		},
		{
			name: "missing password",
			cfg: config.Config{
				Dashboard: config.DashboardConfig{SecretKey: "k"},
				Session:   config.SessionConfig{Backend: config.SessionBackendMemory},
			},
			wantErr: config.ErrMissingPassword,
		},
		{
			name: "unknown backend",
			cfg: config.Config{
				Dashboard: config.DashboardConfig{Password: "p", SecretKey: "k"},
				Session:   config.SessionConfig{Backend: "etcd"},
			},
			wantErr: config.ErrUnknownBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "NOT SET", config.Truncate("", 50))
	assert.Equal(t, "short", config.Truncate("short", 50))
	assert.Equal(t, "abc...", config.Truncate("abcdef", 3))
}
