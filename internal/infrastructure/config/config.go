package config

import (
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"crypto/rand"
)

// TokenMode selects the bearer token scheme.
const (
	TokenModeLegacy = "legacy"
	TokenModeSigned = "signed"
)

// Config holds application configuration values.
type Config struct {
	Port        string
	TokenMode   string
	JWTSecret   string
	TokenExpiry time.Duration
	MongoURI    string
	MongoDBName string
	RedisURL    string
	SeedDemo    bool
	RateLimit   float64
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		TokenMode:   getEnv("TOKEN_MODE", TokenModeLegacy),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		TokenExpiry: time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 24)),
		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DB_NAME", "foodbridge"),
		RedisURL:    getEnv("REDIS_URL", ""),
		SeedDemo:    getEnvAsBool("SEED_DEMO_ACCOUNTS", true),
		RateLimit:   float64(getEnvAsInt("RATE_LIMIT_RPS", 10)),
	}
}

// EnsureJWTSecret returns the configured signing secret, generating an
// ephemeral one when none is set. An ephemeral secret invalidates signed
// tokens across restarts, which is acceptable for development only.
func (c *Config) EnsureJWTSecret() string {
	if c.JWTSecret != "" {
		return c.JWTSecret
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate ephemeral JWT secret: " + err.Error())
	}
	c.JWTSecret = hex.EncodeToString(b)
	return c.JWTSecret
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
