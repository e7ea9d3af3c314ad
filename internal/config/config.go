package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Embedding struct {
		// Provider selects the embedding backend: "local" (hashing
		// vectorizer, no external service) or "inference" (HTTP API).
		Provider  string `yaml:"provider" env:"EMBEDDING_PROVIDER"`
		Dimension int    `yaml:"dimension" env:"EMBEDDING_DIMENSION"`
		MaxTokens int    `yaml:"max_tokens" env:"EMBEDDING_MAX_TOKENS"`
		// Inference provider settings, ignored for the local provider
		Endpoint       string `yaml:"endpoint" env:"EMBEDDING_ENDPOINT"`
		Model          string `yaml:"model" env:"EMBEDDING_MODEL"`
		TimeoutSeconds int    `yaml:"timeout_seconds" env:"EMBEDDING_TIMEOUT_SECONDS"`
	} `yaml:"embedding"`

	Matcher struct {
		DefaultThreshold float64 `yaml:"default_threshold" env:"MATCHER_DEFAULT_THRESHOLD"`
	} `yaml:"matcher"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A local .env file, if present, supplies environment overrides
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campusshare"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Embedding.Provider = "local"
	config.Embedding.Dimension = 256
	config.Embedding.MaxTokens = 128
	config.Embedding.TimeoutSeconds = 10

	config.Matcher.DefaultThreshold = 0.7

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	switch config.Embedding.Provider {
	case "local":
		if config.Embedding.Dimension <= 0 {
			return fmt.Errorf("embedding dimension must be positive")
		}
	case "inference":
		if config.Embedding.Endpoint == "" {
			return fmt.Errorf("embedding endpoint is required for the inference provider")
		}
		if config.Embedding.TimeoutSeconds <= 0 {
			return fmt.Errorf("embedding timeout must be positive")
		}
	default:
		return fmt.Errorf("unknown embedding provider %q", config.Embedding.Provider)
	}

	if config.Embedding.MaxTokens <= 0 {
		return fmt.Errorf("embedding max tokens must be positive")
	}

	if config.Matcher.DefaultThreshold < -1 || config.Matcher.DefaultThreshold > 1 {
		return fmt.Errorf("matcher default threshold must be within [-1, 1]")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
