package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Redis - Session storage
	Redis RedisConfig

	// Session - Conversation state
	Session SessionConfig

	// Ollama - LLM
	Ollama OllamaConfig

	// Catalog - Tour catalog service
	Catalog CatalogConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig is the configuration for conversation state storage.
// Backend is "redis" or "memory"; redis falls back to memory when
// unreachable at startup.
type SessionConfig struct {
	Backend string
	TTL     int // in seconds, 0 means no expiry
}

// OllamaConfig is the configuration for the Ollama LLM. Same shape as pkg/ollama.OllamaConfig.
type OllamaConfig struct {
	URL           string
	Model         string
	IntentTimeout int // in seconds
	ChatTimeout   int // in seconds
}

// CatalogConfig is the configuration for the tour catalog service
type CatalogConfig struct {
	URL     string
	Timeout int // in seconds
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("tour-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/tour/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Redis - Session storage
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Session - Conversation state
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.TTL = viper.GetInt("session.ttl")

	// Ollama - LLM
	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.IntentTimeout = viper.GetInt("ollama.intent_timeout")
	cfg.Ollama.ChatTimeout = viper.GetInt("ollama.chat_timeout")

	// Catalog - Tour catalog service
	cfg.Catalog.URL = viper.GetString("catalog.url")
	cfg.Catalog.Timeout = viper.GetInt("catalog.timeout")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Session
	viper.SetDefault("session.backend", "redis")
	viper.SetDefault("session.ttl", 0)

	// Ollama
	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.1")
	viper.SetDefault("ollama.intent_timeout", 60)
	viper.SetDefault("ollama.chat_timeout", 120)

	// Catalog
	viper.SetDefault("catalog.url", "http://localhost:3000/api/tours")
	viper.SetDefault("catalog.timeout", 10)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be greater than 0")
	}

	switch cfg.Session.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("session.backend must be redis or memory, got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative")
	}

	if cfg.Ollama.URL == "" {
		return fmt.Errorf("ollama.url is required")
	}
	if cfg.Ollama.Model == "" {
		return fmt.Errorf("ollama.model is required")
	}
	if cfg.Ollama.IntentTimeout <= 0 {
		return fmt.Errorf("ollama.intent_timeout must be greater than 0")
	}
	if cfg.Ollama.ChatTimeout <= 0 {
		return fmt.Errorf("ollama.chat_timeout must be greater than 0")
	}

	if cfg.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required")
	}
	if cfg.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be greater than 0")
	}

	return nil
}
