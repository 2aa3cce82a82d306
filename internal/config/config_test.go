package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("API_TIMEOUT_SECONDS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, 30*time.Minute, cfg.ViewStateTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("API_BASE_URL", "https://backend.example.org/")
	t.Setenv("API_TIMEOUT_SECONDS", "3")
	t.Setenv("VIEWSTATE_CAPACITY", "not-a-number")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://backend.example.org", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, 5000, cfg.ViewStateCapacity)
}
