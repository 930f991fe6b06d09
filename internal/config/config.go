package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	JWT       JWTConfig
	Session   SessionConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BackendConfig points at the remote tr4cking REST service the console
// proxies. Every record the console shows lives there; the console owns
// no database of its own.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// SessionConfig controls the per-clerk backend session store and the
// in-memory invoice draft store.
type SessionConfig struct {
	TTL      time.Duration
	DraftTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "tr4cking-admin-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 20)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_TTL_MINUTES", 480)
	viper.SetDefault("DRAFT_TTL_MINUTES", 120)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Session: SessionConfig{
			TTL:      time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			DraftTTL: time.Duration(viper.GetInt("DRAFT_TTL_MINUTES")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: rateLimitDuration(viper.GetInt("RATE_LIMIT_DURATION")),
		},
	}
}

// rateLimitDuration rejects a zero or negative window, which would
// otherwise turn the per-session rate into +Inf and disable limiting.
func rateLimitDuration(seconds int) int {
	if seconds <= 0 {
		log.Printf("Warning: RATE_LIMIT_DURATION %d is invalid, using 60", seconds)
		return 60
	}
	return seconds
}
