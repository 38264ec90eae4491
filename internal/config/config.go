package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Mongo       MongoConfig
	JWT         JWTConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

// MongoConfig holds MongoDB connection configuration
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// JWTConfig holds JWT signing configuration
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigin string
}

// RateLimitConfig holds rate limiting configuration for the server binary
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "hr")
	viper.SetDefault("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 1)
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Mongo: MongoConfig{
			URI:            viper.GetString("MONGODB_URI"),
			Database:       viper.GetString("MONGODB_DATABASE"),
			ConnectTimeout: time.Duration(viper.GetInt("MONGODB_CONNECT_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		CORS: CORSConfig{
			AllowedOrigin: viper.GetString("FRONTEND_URL"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// Validate checks that required configuration values are present
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	return nil
}

// TokenDuration returns the configured JWT lifetime
func (c *Config) TokenDuration() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}
