package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "hr", cfg.Mongo.Database)
	assert.Equal(t, 1, cfg.JWT.ExpiryHours)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGODB_DATABASE", "hr_test")
	t.Setenv("JWT_SECRET", "shhh")
	t.Setenv("FRONTEND_URL", "https://front.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "hr_test", cfg.Mongo.Database)
	assert.Equal(t, "shhh", cfg.JWT.Secret)
	assert.Equal(t, "https://front.example", cfg.CORS.AllowedOrigin)
}

func TestValidateRequiresSecret(t *testing.T) {
	cfg := &Config{Mongo: MongoConfig{URI: "mongodb://localhost:27017"}}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "shhh"
	assert.NoError(t, cfg.Validate())
}
