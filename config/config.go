package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrPartialDatabase is returned when only some of the DB_* variables are set.
var ErrPartialDatabase = errors.New("config: DB_ADDR, DB_USER, DB_PASS and DB_NAME must be set together")

var databaseEnvs = []string{"DB_ADDR", "DB_USER", "DB_PASS", "DB_NAME"}

type Config struct {
	Port string

	DBAddr     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel slog.Level
}

// Load reads the optional .env file, then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if onlySomeEnvsSet(databaseEnvs...) {
		return Config{}, ErrPartialDatabase
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "15m"))
	if err != nil {
		return Config{}, fmt.Errorf("config: TOKEN_TTL: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	cfg := Config{
		Port:       getEnv("PORT", "4000"),
		DBAddr:     getEnv("DB_ADDR", "localhost:8200"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASS", "password"),
		DBName:     getEnv("DB_NAME", "todos"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		TokenTTL:   ttl,
		LogLevel:   level,
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, errors.New("config: JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func onlySomeEnvsSet(keys ...string) bool {
	return !noEnvsSet(keys...) && !allEnvsSet(keys...)
}

func noEnvsSet(keys ...string) bool {
	for _, key := range keys {
		if _, ok := os.LookupEnv(key); ok {
			return false
		}
	}
	return true
}

func allEnvsSet(keys ...string) bool {
	for _, key := range keys {
		if _, ok := os.LookupEnv(key); !ok {
			return false
		}
	}
	return true
}
