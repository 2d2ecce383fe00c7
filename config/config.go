package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Redis configuration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// PubNub configuration
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubSecretKey    string

	// Seed configuration
	SeedRandom     int64
	SeedCustomers  int
	SeedOrganizers int
	SeedEvents     int
	SeedOrders     int
	SeedRefunds    int

	// Session configuration
	SessionTTL time.Duration

	// Rate limiting (requests per minute)
	LoginRateLimit    int
	CheckoutRateLimit int

	// Monitoring
	EnableMetrics bool
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Redis
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubSecretKey:    getEnv("PUBNUB_SECRET_KEY", ""),

		// Seed data
		SeedRandom:     int64(getEnvAsInt("SEED_RANDOM", 0)),
		SeedCustomers:  getEnvAsInt("SEED_CUSTOMERS", 12),
		SeedOrganizers: getEnvAsInt("SEED_ORGANIZERS", 5),
		SeedEvents:     getEnvAsInt("SEED_EVENTS", 10),
		SeedOrders:     getEnvAsInt("SEED_ORDERS", 20),
		SeedRefunds:    getEnvAsInt("SEED_REFUNDS", 4),

		// Sessions
		SessionTTL: getEnvAsDuration("SESSION_TTL", "24h"),

		// Rate limits
		LoginRateLimit:    getEnvAsInt("LOGIN_RATE_LIMIT", 10),
		CheckoutRateLimit: getEnvAsInt("CHECKOUT_RATE_LIMIT", 30),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, try to parse default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
