package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server Server
	Store  Store
	Admin  Admin
}

// Server holds HTTP server settings.
type Server struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// Store holds connection settings for the external data API (PostgREST-style).
type Store struct {
	URL        string // base endpoint, e.g. https://xyz.supabase.co
	ServiceKey string // service role key attached to every call
}

// Admin holds Session Gate settings.
type Admin struct {
	PIN            string // shared admin secret; empty disables login entirely
	SessionSecret  string // HMAC key for the session cookie; empty = random per process
	SessionHours   int
	ThrottleWindow int // per-IP submission window, minutes
}

// Configured reports whether both store values are present.
// Missing values make every store-touching operation fail.
func (s Store) Configured() bool {
	return s.URL != "" && s.ServiceKey != ""
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: Server{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Store: Store{
			URL:        strings.TrimRight(getEnv("STORE_URL", ""), "/"),
			ServiceKey: getEnv("STORE_SERVICE_KEY", ""),
		},
		Admin: Admin{
			PIN:            getEnv("ADMIN_PIN", ""),
			SessionSecret:  getEnv("SESSION_SECRET", ""),
			SessionHours:   getEnvInt("SESSION_HOURS", 6),
			ThrottleWindow: getEnvInt("THROTTLE_WINDOW_MIN", 10),
		},
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
