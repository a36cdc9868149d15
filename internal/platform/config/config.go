package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	Environment    string
	FrontendDir    string
	TokenTTL       time.Duration
	MaxBodyBytes   int64
	RunMigrations  bool
	RunSeed        bool
	SeedHREmail    string
	SeedHRPassword string
}

func Load() Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		Environment:    getEnv("APP_ENV", "development"),
		FrontendDir:    getEnv("FRONTEND_DIR", "frontend/dist"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 8*time.Hour),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:        getEnvBool("RUN_SEED", true),
		SeedHREmail:    getEnv("SEED_HR_EMAIL", "hr.manager@example.com"),
		SeedHRPassword: getEnv("SEED_HR_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedHRPassword) == "" {
			return fmt.Errorf("SEED_HR_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("TOKEN_TTL must be at least one minute")
	}
	return nil
}
