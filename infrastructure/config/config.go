package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion      string
	DynamoDBTable  string
	BookingQueue   string // SQS queue URL for booking lifecycle events
	DynamoEndpoint string // optional local endpoint override

	// Authentication
	JWTSecret   string
	JWTIssuer   string
	TokenExpiry time.Duration

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable:  getEnv("TABLE_NAME", "letstayinn"),
		BookingQueue:   getEnv("BOOKING_QUEUE_URL", ""),
		DynamoEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTIssuer:   getEnv("JWT_ISSUER", "letstayinn"),
		TokenExpiry: getEnvDuration("TOKEN_EXPIRY", 24*time.Hour),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.IsProduction() {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.BookingQueue == "" {
			return fmt.Errorf("BOOKING_QUEUE_URL is required in production")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default value.
// Plain integers are read as hours.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}
	return defaultValue
}
