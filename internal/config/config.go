package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the dashboard server.
type Config struct {
	Port        string
	Env         string
	CORSOrigins string

	// DataSeed seeds the demo data generator. Zero means time-based.
	DataSeed            int64
	InitialTransactions int
	ChartDays           int
	AlertLimit          int
	PageSize            int

	// INRPerUSD converts amounts entered in rupees to the internal unit.
	INRPerUSD float64

	// SubmitRateLimit caps transaction submissions per client within SubmitRateWindow.
	SubmitRateLimit  int
	SubmitRateWindow time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	ChartCacheTTL time.Duration
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		Port:                GetEnv("PORT", "3000"),
		Env:                 GetEnv("ENV", "development"),
		CORSOrigins:         GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		DataSeed:            GetInt64Env("DATA_SEED", 0),
		InitialTransactions: GetIntEnv("INITIAL_TRANSACTIONS", 50),
		ChartDays:           GetIntEnv("CHART_DAYS", 30),
		AlertLimit:          GetIntEnv("ALERT_LIMIT", 5),
		PageSize:            GetIntEnv("PAGE_SIZE", 5),
		INRPerUSD:           GetFloatEnv("INR_PER_USD", 83),
		SubmitRateLimit:     GetIntEnv("SUBMIT_RATE_LIMIT", 30),
		SubmitRateWindow:    GetDurationEnv("SUBMIT_RATE_WINDOW", time.Minute),
		RedisHost:           GetEnv("REDIS_HOST", ""),
		RedisPort:           GetEnv("REDIS_PORT", "6379"),
		RedisPassword:       GetEnv("REDIS_PASSWORD", ""),
		RedisDB:             GetIntEnv("REDIS_DB", 0),
		ChartCacheTTL:       GetDurationEnv("CHART_CACHE_TTL", 10*time.Minute),
	}
}

// RedisEnabled reports whether a Redis host was configured for the chart cache.
func (c Config) RedisEnabled() bool {
	return strings.TrimSpace(c.RedisHost) != ""
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetInt64Env returns an int64 environment variable or a default value.
func GetInt64Env(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a positive float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
