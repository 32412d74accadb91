package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  env: production
database:
  url: postgres://localhost/test
rabbitmq:
  url: amqp://localhost/
workers: 4
auth:
  jwt_secret: secret
  token_ttl_minutes: 30
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "postgres://localhost/test", cfg.Database.URL)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "secret", cfg.Auth.JWTSecret)
	require.Equal(t, 30*time.Minute, cfg.TokenTTL())
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://localhost/test
auth:
  jwt_secret: secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, time.Hour, cfg.TokenTTL())
	require.Equal(t, 1, cfg.Workers)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
