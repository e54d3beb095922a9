package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`

	MongoDB MongoDBConfig
	Redis   RedisConfig
	NATS    NATSConfig
	Auth    AuthConfig

	CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

type MongoDBConfig struct {
	URI      string `env:"MONGODB_URI" env-required:"true"`
	Password string `env:"MONGODB_PASSWORD"`
	Database string `env:"MONGODB_DATABASE" env-default:"kost"`
}

// RedisConfig is optional; an empty Addr disables the listing cache.
type RedisConfig struct {
	Addr       string        `env:"REDIS_ADDR"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" env-default:"0"`
	ListingTTL time.Duration `env:"LISTING_CACHE_TTL" env-default:"5m"`
}

// NATSConfig is optional; an empty URL disables booking events.
type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	JWKSURL   string        `env:"JWKS_URL"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"24h"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if cfg.MongoDB.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.Auth.JWTSecret) < 32 && cfg.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	if len(cfg.AllowedOrigins()) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return &cfg, nil
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
