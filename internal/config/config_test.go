package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.ExpiresIn)
	assert.Equal(t, "memoday_session", cfg.Session.Cookie)
	assert.Equal(t, DevSessionSecret, cfg.Session.Secret)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
env: production
server:
  port: 9090
session:
  secret: file-secret
  expires_in: 12h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("SESSION_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 7070, cfg.Server.Port, "env var wins over file")
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Session.ExpiresIn)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_BadDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  expires_in: soon\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := defaults()
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "db"
	cfg.Database.Port = 3307
	cfg.Database.Name = "memos"

	assert.Equal(t, "u:p@tcp(db:3307)/memos?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}
