package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "user_roles", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                 "8080",
		"ENV":                  "production",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"REDIS_ADDR":           "redis:6379",
		"IDEMPOTENCY_TTL":      "1h",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Hour, cfg.Redis.IdempotencyTTL)
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"MONGO_TIMEOUT": "soon",
	}))
	assert.Error(t, err)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_DB=from_file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("MONGO_DB") })

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Mongo.Database)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
