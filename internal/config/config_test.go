package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "dev-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "kost", cfg.MongoDB.Database)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ListingTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ShortSecretInProduction(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsEmptyOrigins(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "dev-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://kost.id, ,https://admin.kost.id "}
	assert.Equal(t, []string{"https://kost.id", "https://admin.kost.id"}, cfg.AllowedOrigins())
}
