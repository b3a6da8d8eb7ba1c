package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Token store backends
const (
	TokenStorePostgres = "postgres"
	TokenStoreRedis    = "redis"
)

type Config struct {
	Port               string
	DatabaseURL        string
	DBConnectRetries   int // Ping attempts before giving up at start-up
	RedisURL           string
	TokenStore         string  // "postgres" or "redis"
	TokenTTLHours      int     // 0 means tokens never expire
	BcryptCost         int     // Cost used for password hashes
	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for register/login (stricter)
	RateLimitAuthBurst int     // Burst size for register/login
	LogLevel           string  // DEBUG, INFO, WARN, ERROR
	LogFormat          string  // json or text
	QRCodeSize         int     // QR code PNG size in pixels
	ShutdownTimeout    time.Duration
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBConnectRetries:   getEnvInt("DB_CONNECT_RETRIES", 5),
		RedisURL:           getEnv("REDIS_URL", ""),
		TokenStore:         getEnv("TOKEN_STORE", TokenStorePostgres),
		TokenTTLHours:      getEnvInt("TOKEN_TTL_HOURS", 0),
		BcryptCost:         getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 2),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 5),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		QRCodeSize:         getEnvInt("QRCODE_SIZE", 256),
		ShutdownTimeout:    time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// TokenTTL returns the lifetime of new access tokens, or 0 for no expiry.
func (c *Config) TokenTTL() time.Duration {
	if c.TokenTTLHours <= 0 {
		return 0
	}
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// Validate checks the settings the server can't start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	switch c.TokenStore {
	case TokenStorePostgres:
	case TokenStoreRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when TOKEN_STORE=redis")
		}
	default:
		return errors.New("TOKEN_STORE must be \"postgres\" or \"redis\"")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.New("BCRYPT_COST is out of range")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
