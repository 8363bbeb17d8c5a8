package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port string

	StorageBackend string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	StorageKey     string

	SheetsURL     string
	SheetsTimeout time.Duration

	HRPassphrase string
	TimeZone     string
	NodeID       int64

	GeminiAPIKey string
	GeminiModel  string

	GmailCredentials string
	GmailToken       string
	HRNotifyEmail    string

	LogLevel    string
	CORSOrigins string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		StorageBackend:   getEnv("STORAGE_BACKEND", BackendMemory),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getInt("REDIS_DB", 0),
		StorageKey:       getEnv("STORAGE_KEY", "sales_apps_kg_v1"),
		SheetsURL:        os.Getenv("SHEETS_URL"),
		SheetsTimeout:    getDuration("SHEETS_TIMEOUT", 0),
		HRPassphrase:     getEnv("HR_PASSPHRASE", "hr2024"),
		TimeZone:         getEnv("TIME_ZONE", "Asia/Bishkek"),
		NodeID:           int64(getInt("NODE_ID", 1)),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GmailCredentials: getEnv("GMAIL_CREDENTIALS", "credential.json"),
		GmailToken:       getEnv("GMAIL_TOKEN", "token.json"),
		HRNotifyEmail:    os.Getenv("HR_NOTIFY_EMAIL"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres storage backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis storage backend")
		}
	default:
		return errors.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageKey == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return errors.Errorf("NODE_ID must be within 0..1023, got %d", c.NodeID)
	}
	return nil
}

// Location resolves TimeZone, falling back to Bishkek's fixed UTC+6 offset.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone("UTC+6", 6*60*60)
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
