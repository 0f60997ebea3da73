package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Environment string
	ServerPort  string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	// Upstream driving-school API
	APIBaseURL string
	APIToken   string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      cast.ToInt(getEnv("DB_PORT", "5432")),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "autoskola"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:9000"),
		APIToken:    getEnv("API_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
