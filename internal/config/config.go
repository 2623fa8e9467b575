package config

import (
	"os"
	"strconv"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/domain"
)

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CartKeyPrefix   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	NotificationTTL time.Duration
	CheckoutUser    domain.CheckoutUser
}

func Load() Config {
	return Config{
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CartKeyPrefix:   getEnv("CART_KEY_PREFIX", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		NotificationTTL: 3 * time.Second,
		CheckoutUser: domain.CheckoutUser{
			Name:  getEnv("CHECKOUT_USER_NAME", "ASE Challenger"),
			Email: getEnv("CHECKOUT_USER_EMAIL", "candidate@verto.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
