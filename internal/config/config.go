package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the client and the stub server read from the
// environment. APIBaseURL points the client at the remote storefront API;
// the JWT and TTL settings are only used by the local stub.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	RetryAttempts   int
	RetryDelay      time.Duration
	StubAddr        string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return Config{
		APIBaseURL:      getEnvOrDefault("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT_SECONDS", 30, time.Second),
		RetryAttempts:   getIntEnv("RETRY_ATTEMPTS", 3),
		RetryDelay:      getDurationEnv("RETRY_DELAY_MS", 1000, time.Millisecond),
		StubAddr:        getEnvOrDefault("STUB_ADDR", ":8080"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "stub-secret"),
		AccessTokenTTL:  getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		RefreshTokenTTL: getDurationEnv("REFRESH_TOKEN_TTL", 7, 24*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
