package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
database:
  driver: sqlite
  sqlite_path: ":memory:"
jwt:
  secret: short
`)
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Redis.CompletionTTL())
	assert.Equal(t, "UTC", cfg.Schedule.DefaultTimezone)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "logs/app.log", cfg.Log.File)
}

func TestLoadConfigRejectsWeakSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: too-short
`)
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "JWT secret is too short")
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	dir := writeConfig(t, `
schedule:
  default_timezone: Mars/Olympus_Mons
`)
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "default_timezone")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigCompletionTTLFromString(t *testing.T) {
	dir := writeConfig(t, `
redis:
  completion_ttl_minutes: "45"
`)
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Redis.CompletionTTLMinutes)
	assert.Equal(t, 45*time.Minute, cfg.Redis.CompletionTTL())
}
