package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 15
	DefaultRefreshTokenExpiryMin = 10080 // 7 days

	// Development-only fallbacks. Production refuses to start without
	// externally supplied secrets.
	DevAccessTokenSecret  = "DEV_JWT_SECRET_REPLACE_ME"
	DevRefreshTokenSecret = "DEV_REFRESH_SECRET_REPLACE_ME"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
}

// Load reads configuration from the environment, with a config/.env.dev or
// config/.env.prod file filling in whatever the real environment leaves
// unset. Environment variables always win over file values.
func Load() *Config {
	env := getEnv("ENV", "development")

	if env == "production" {
		_ = godotenv.Load("config/.env.prod")
	} else {
		_ = godotenv.Load("config/.env.dev")
	}

	cfg := &Config{
		Env:              env,
		Port:             getEnv("PORT", DefaultPort),
		DBURL:            mustGetEnv("DB_URL"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
	}

	if env == "production" {
		cfg.AccessTokenSecret = mustGetEnv("ACCESS_TOKEN_SECRET")
		cfg.RefreshTokenSecret = mustGetEnv("REFRESH_TOKEN_SECRET")
	} else {
		cfg.AccessTokenSecret = getEnv("ACCESS_TOKEN_SECRET", DevAccessTokenSecret)
		cfg.RefreshTokenSecret = getEnv("REFRESH_TOKEN_SECRET", DevRefreshTokenSecret)
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
