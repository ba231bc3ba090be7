package config

import "os"

type Config struct {
	// Document store. No fallbacks on purpose: when either value is
	// missing the store stays unavailable for the process lifetime.
	DatabaseURL  string
	DatabaseName string

	// Server
	Port        string
	CORSOrigins string

	// Error tracking
	SentryDSN string
}

func Load() *Config {
	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		Port:        getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SentryDSN: os.Getenv("SENTRY_DSN"),
	}
}

// StoreConfigured reports whether both store settings were present at startup.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
