package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the variables the config reads and restores them when the
// test ends.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"ENV", "SKIP_SEED", "HTTP_HOST", "PORT", "HTTP_TIMEOUT", "HTTP_IDLE_TIMEOUT",
		"HTTP_SHUTDOWN_TIMEOUT", "HTTP_MAX_BODY_BYTES", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaultsFromEnv(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.False(t, cfg.SkipSeed)
	assert.Equal(t, "3000", cfg.HTTPServer.Port)
	assert.Equal(t, ":3000", cfg.HTTPServer.Address())
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ShutdownTimeout)
	assert.Equal(t, int64(102400), cfg.HTTPServer.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadPortFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8085")
	t.Setenv("ENV", "prod")
	t.Setenv("SKIP_SEED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.True(t, cfg.SkipSeed)
	assert.Equal(t, ":8085", cfg.HTTPServer.Address())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
env: "dev"
skip_seed: true
http_server:
  host: "127.0.0.1"
  port: "9090"
  timeout: 2s
cors:
  allowed_origins:
    - "http://localhost:5173"
    - "http://127.0.0.1:5173"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.True(t, cfg.SkipSeed)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPServer.Address())
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_server:\n  port: \"9090\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.HTTPServer.Port)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}
