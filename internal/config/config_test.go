package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp переносит тест в пустой каталог, чтобы не подхватить чужой .env
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_PORT", "GRPC_PORT", "REQUEST_TIMEOUT_MS", "SHUTDOWN_TIMEOUT_MS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.GRPCEnabled())
	assert.Equal(t, ":8000", cfg.HTTPAddr())
	assert.Equal(t, ":50051", cfg.GRPCAddr())
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GRPC_PORT", "0")
	t.Setenv("REQUEST_TIMEOUT_MS", "250")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://calc.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.False(t, cfg.GRPCEnabled())
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://calc.example.com"}, cfg.AllowedOrigins)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	clearEnv(t)

	// ../.env из списка кандидатов
	parent := filepath.Dir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(parent, ".env"), []byte("HTTP_PORT=8123\nSHUTDOWN_TIMEOUT_MS=1500\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("HTTP_PORT")
		os.Unsetenv("SHUTDOWN_TIMEOUT_MS")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8123", cfg.HTTPPort)
	assert.Equal(t, 1500*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"нечисловой порт HTTP", "HTTP_PORT", "http"},
		{"нечисловой порт gRPC", "GRPC_PORT", "grpc"},
		{"нулевой таймаут запроса", "REQUEST_TIMEOUT_MS", "0"},
		{"текстовый таймаут остановки", "SHUTDOWN_TIMEOUT_MS", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
