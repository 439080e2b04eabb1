package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "PORT", "ENV", "LOG_LEVEL", "METRICS_ADDR",
		"AUTO_MIGRATE", "ALLOWED_ORIGINS", "MAX_REQUEST_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := New()

	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.ListenAddr())
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsAddr)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, int64(1024*1024), cfg.MaxRequestSize)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.GetAllowedOrigins())
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/leaderboard?sslmode=disable")
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://play.example.com, https://www.example.com,")
	t.Setenv("MAX_REQUEST_SIZE", "2048")

	cfg := New()

	assert.Equal(t, "postgres://u:p@db:5432/leaderboard?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "0.0.0.0:8081", cfg.ListenAddr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://play.example.com", "https://www.example.com"}, cfg.GetAllowedOrigins())
	assert.Equal(t, int64(2048), cfg.MaxRequestSize)
}

func TestNew_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_REQUEST_SIZE", "lots")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := New()

	assert.Equal(t, int64(1024*1024), cfg.MaxRequestSize)
	assert.True(t, cfg.AutoMigrate)
}
