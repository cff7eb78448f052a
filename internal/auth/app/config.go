package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vasupateljsk089-byte/Real-Estate/pkg/jwtx"
)

type Config struct {
	Issuer string // Issuer claim for tokens (default: realty-auth)

	AccessSecret  string // Required: HMAC secret for access tokens
	RefreshSecret string // Required: HMAC secret for refresh tokens
	ResetSecret   string // Required: HMAC secret for password reset tokens

	AccessTTL  time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTTL time.Duration // Optional: refresh token lifetime (default: 168h)
	ResetTTL   time.Duration // Optional: reset token lifetime (default: 10m)
	Leeway     time.Duration // Optional: clock skew allowance for verification (default: 30s)

	DatabaseFile string // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	SMTPHost     string // Optional: SMTP relay host; OTP mail is logged instead when empty
	SMTPPort     int    // Optional: SMTP relay port (default: 587)
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string // From address for outbound mail

	UploadDir     string // Optional: directory avatar uploads land in (default: ./uploads)
	UploadBaseURL string // Optional: public URL prefix for uploads (default: /static)

	SecureCookies bool // Mark session cookies HTTPS-only; enable outside dev

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Issuer: getEnvOrDefault("AUTH_ISSUER", "realty-auth"),

		AccessSecret:  os.Getenv("AUTH_ACCESS_TOKEN_SECRET"),
		RefreshSecret: os.Getenv("AUTH_REFRESH_TOKEN_SECRET"),
		ResetSecret:   os.Getenv("AUTH_RESET_TOKEN_SECRET"),

		AccessTTL:  getEnvDurationOrDefault("AUTH_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTTL),
		RefreshTTL: getEnvDurationOrDefault("AUTH_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTTL),
		ResetTTL:   getEnvDurationOrDefault("AUTH_RESET_TOKEN_TTL", jwtx.DefaultResetTTL),
		Leeway:     getEnvDurationOrDefault("AUTH_TOKEN_LEEWAY", jwtx.DefaultLeeway),

		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:   getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "no-reply@localhost"),

		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "uploads"),
		UploadBaseURL: getEnvOrDefault("UPLOAD_BASE_URL", "/static"),

		SecureCookies: getEnvBoolOrDefault("SECURE_COOKIES", false),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The token secrets have no safe default. Refusing to start beats
	// shipping with a guessable signing key.
	for _, s := range []struct{ name, value string }{
		{"AUTH_ACCESS_TOKEN_SECRET", cfg.AccessSecret},
		{"AUTH_REFRESH_TOKEN_SECRET", cfg.RefreshSecret},
		{"AUTH_RESET_TOKEN_SECRET", cfg.ResetSecret},
	} {
		if s.value == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", s.name)
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
