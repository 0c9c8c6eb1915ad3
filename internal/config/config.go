package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI string
	ListenAddr  string
	LogLevel    string
	PageSize    int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	return &Config{
		DatabaseURI: os.Getenv("DATABASE_URI"),
		ListenAddr:  getEnvOrDefault("LISTEN_ADDR", ":8080"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		PageSize:    getEnvIntOrDefault("PAGE_SIZE", 10),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
