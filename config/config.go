package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	StoreBackend string
	DataDir      string
	MongoURI     string
	MongoDB      string
	SQLitePath   string

	RedisURL      string
	RedisPassword string
	Events        string

	JWTSecret    []byte
	MaxBodyBytes int64
	RateLimit    float64
	RateBurst    int
	CORSOrigins  []string
	LogLevel     string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found; using system environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	port := get("PORT", ":5000")
	if port[0] != ':' {
		port = ":" + port
	}

	return Config{
		Port:          port,
		StoreBackend:  strings.ToLower(get("STORE_BACKEND", "file")),
		DataDir:       get("DATA_DIR", "./data"),
		MongoURI:      get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       get("MONGO_DB", "cookbook"),
		SQLitePath:    get("SQLITE_PATH", "./data/cookbook.db"),
		RedisURL:      get("REDIS_URL", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		Events:        strings.ToLower(get("EVENTS", "log")),
		JWTSecret:     []byte(getenv("JWT_SECRET")),
		MaxBodyBytes:  parseInt64(get("MAX_BODY_BYTES", ""), "MAX_BODY_BYTES", 100<<20),
		RateLimit:     parseFloat(get("RATE_LIMIT", ""), "RATE_LIMIT", 20),
		RateBurst:     int(parseInt64(get("RATE_BURST", ""), "RATE_BURST", 40)),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "*")),
		LogLevel:      get("LOG_LEVEL", "info"),
	}
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c Config) NeedsRedis() bool {
	return c.StoreBackend == "redis" || c.Events == "redis"
}

func parseInt64(raw, key string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		slog.Warn("Invalid value, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func parseFloat(raw, key string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		slog.Warn("Invalid value, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
