package config

import (
	"log"
	"os"
)

type Config struct {
	MongoURL string // required, e.g. mongodb://localhost:27017
	DBName   string // required
	Port     string // HTTP listen port, default 8080
	LogLevel string // "debug" | "info" | "warn" | "error", default info
	GinMode  string // optional, e.g. "release"
}

// Load reads configuration from the environment. The store connection string
// and database name have no sensible defaults; missing either is fatal.
func Load() *Config {
	return &Config{
		MongoURL: requireEnv("MONGO_URL"),
		DBName:   requireEnv("DB_NAME"),
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		GinMode:  getenv("GIN_MODE", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required environment variable %s", key)
	}
	return v
}
