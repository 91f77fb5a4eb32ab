package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	StoreDriver  string
	MongoURI     string
	DBName       string
	AnalyticsDSN string
	DemoMode     bool
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:         getEnvOrDefault("PORT", "3001"),
		JWTSecret:    getEnvOrDefault("JWT_SECRET", ""),
		TokenTTL:     getDurationEnv("TOKEN_TTL_DAYS", 7, 24*time.Hour),
		StoreDriver:  strings.ToLower(getEnvOrDefault("STORE_DRIVER", "memory")),
		MongoURI:     getEnvOrDefault("MONGO_URI", ""),
		DBName:       getEnvOrDefault("DB_NAME", "crm"),
		AnalyticsDSN: getEnvOrDefault("ANALYTICS_DSN", "memory://"),
		DemoMode:     getBoolEnv("DEMO_MODE", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
