package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Postgres  PostgresConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL      string
	MaxConns int
}

type AuthConfig struct {
	Enabled   bool
	JWTSecret string
	Issuer    string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.URL = viper.GetString("postgres.url")
	cfg.Postgres.MaxConns = viper.GetInt("postgres.max_conns")
	if pgURL := viper.GetString("database_url"); pgURL != "" {
		cfg.Postgres.URL = pgURL
	}

	// Auth
	cfg.Auth.Enabled = viper.GetBool("auth.enabled")
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth is enabled but no JWT secret configured - set auth.jwt_secret or JWT_SECRET")
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = viper.GetDuration("rate_limit.client_ttl")

	// Item cache
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.issuer", "catalog-service")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.client_ttl", 5*time.Minute)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", 30*time.Second)
}
