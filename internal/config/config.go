package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          string
	GinMode       string
	Env           string // development, staging, production
	SiteURL       string
	SessionSecret string
	TemplatesDir  string
	StaticDir     string

	// Remote research API
	APIBaseURL string
	APITimeout time.Duration

	// View state kept between requests; Redis is used when RedisURL is set
	RedisURL          string
	ViewStateTTL      time.Duration
	ViewStateCapacity int
}

func Load() Config {
	return Config{
		Port:              getenv("PORT", "8080"),
		GinMode:           getenv("GIN_MODE", "debug"),
		Env:               normalizeEnv(getenv("APP_ENV", "development")),
		SiteURL:           strings.TrimSuffix(getenv("SITE_URL", "http://localhost:8080"), "/"),
		SessionSecret:     getenv("SESSION_SECRET", "secret_key_change_me"),
		TemplatesDir:      getenv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:         getenv("STATIC_DIR", "./web/static"),
		APIBaseURL:        strings.TrimSuffix(getenv("API_BASE_URL", "http://localhost:8000"), "/"),
		APITimeout:        time.Duration(getenvInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
		RedisURL:          getenv("REDIS_URL", ""),
		ViewStateTTL:      time.Duration(getenvInt("VIEWSTATE_TTL_SECONDS", 1800)) * time.Second,
		ViewStateCapacity: getenvInt("VIEWSTATE_CAPACITY", 5000),
	}
}

// normalizeEnv keeps APP_ENV to the three environments the killswitch
// table knows about.
func normalizeEnv(env string) string {
	switch strings.ToLower(env) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	}
	return "development"
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
