package config

import (
	"fmt"
	"strings"

	"github.com/Truthmedia123/newapp12345/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig    `split_words:"true"`
	Database   DatabaseConfig  `split_words:"true"`
	Cache      CacheConfig     `split_words:"true"`
	Scheduler  SchedulerConfig `split_words:"true"`
	AppBaseURL string          `envconfig:"APP_URL" default:"http://localhost:8080"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"vendordirectory"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// CacheConfig contains settings for the caching layer
type CacheConfig struct {
	Type                 string `envconfig:"CACHE_TYPE" default:"memory"`
	DefaultTTLSeconds    int    `envconfig:"CACHE_DEFAULT_TTL" default:"300"`
	SweepIntervalSeconds int    `envconfig:"CACHE_SWEEP_INTERVAL" default:"300"`
	RedisAddr            string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword        string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB              int    `envconfig:"CACHE_REDIS_DB" default:"0"`
}

// SchedulerConfig contains settings for the background task scheduler
type SchedulerConfig struct {
	InvitePurgeInterval    int `envconfig:"INVITE_PURGE_INTERVAL" default:"1440"`
	FeaturedRefreshMinutes int `envconfig:"FEATURED_REFRESH_INTERVAL" default:"10"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(c.AppBaseURL, "http://") && !strings.HasPrefix(c.AppBaseURL, "https://") {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	if c.Type != "memory" && c.Type != "redis" {
		return errors.NewConfigurationError("CACHE_TYPE must be either 'memory' or 'redis'", nil)
	}
	if c.DefaultTTLSeconds < 1 {
		return errors.NewConfigurationError("CACHE_DEFAULT_TTL must be at least 1 second", nil)
	}
	if c.SweepIntervalSeconds < 1 {
		return errors.NewConfigurationError("CACHE_SWEEP_INTERVAL must be at least 1 second", nil)
	}
	if c.Type == "redis" && c.RedisAddr == "" {
		return errors.NewConfigurationError("CACHE_REDIS_ADDR cannot be empty when CACHE_TYPE is 'redis'", nil)
	}
	return nil
}

// Validate checks scheduler configuration
func (s *SchedulerConfig) Validate() error {
	if s.InvitePurgeInterval < 1 {
		return errors.NewConfigurationError("INVITE_PURGE_INTERVAL must be at least 1 minute", nil)
	}
	if s.InvitePurgeInterval > 10080 {
		return errors.NewConfigurationError("INVITE_PURGE_INTERVAL cannot exceed 10080 minutes (7 days)", nil)
	}
	if s.FeaturedRefreshMinutes < 1 {
		return errors.NewConfigurationError("FEATURED_REFRESH_INTERVAL must be at least 1 minute", nil)
	}
	return nil
}
