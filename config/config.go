package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant
	LLM       LLMConfig
	Session   SessionConfig
	RateLimit RateLimitConfig

	// Storage & transport
	Postgres       PostgresConfig
	NATS           NATSConfig
	GoogleCalendar GoogleCalendarConfig
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

// LLMConfig holds configuration for the provider chain
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	AttemptTimeout  string           `yaml:"attempt_timeout"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// SessionConfig selects where conversation state lives.
type SessionConfig struct {
	Store       string // memory | redis
	RedisURL    string
	TTL         string
	MaxSessions int
	CookieName  string
	CookieTTL   string
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   string
}

type PostgresConfig struct {
	DSN string
}

type NATSConfig struct {
	URL     string
	Subject string
	Queue   string
	Timeout string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

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

	// LLM provider chain
	cfg.LLM.AttemptTimeout = viper.GetString("llm.attempt_timeout")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, providerFromMap(providerMap))
				}
			}
		}
	}
	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Conversation state
	cfg.Session.Store = viper.GetString("session.store")
	cfg.Session.RedisURL = viper.GetString("session.redis_url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Session.RedisURL = redisURL
	}
	cfg.Session.TTL = viper.GetString("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieTTL = viper.GetString("session.cookie_ttl")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.Requests = viper.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = viper.GetString("rate_limit.window")

	// Storage & transport
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	cfg.NATS.URL = viper.GetString("nats.url")
	cfg.NATS.Subject = viper.GetString("nats.subject")
	cfg.NATS.Queue = viper.GetString("nats.queue")
	cfg.NATS.Timeout = viper.GetString("nats.timeout")

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

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

	// LLM defaults
	viper.SetDefault("llm.attempt_timeout", "5s")
	viper.SetDefault("llm.max_total_timeout", "20s")

	viper.SetDefault("session.store", "memory")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cookie_name", "sessionId")
	viper.SetDefault("session.cookie_ttl", "24h")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "15m")

	viper.SetDefault("nats.subject", "assistant.prompt")
	viper.SetDefault("nats.queue", "assistant-workers")
	viper.SetDefault("nats.timeout", "30s")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")
}

func providerFromMap(m map[string]interface{}) ProviderConfig {
	return ProviderConfig{
		Name:     getStringFromMap(m, "name"),
		Enabled:  getBoolFromMap(m, "enabled"),
		Priority: getIntFromMap(m, "priority"),
		APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
		BaseURL:  getStringFromMap(m, "base_url"),
		Model:    getStringFromMap(m, "model"),
		Timeout:  getStringFromMap(m, "timeout"),
	}
}

// ParseDuration parses s, returning def when s is empty or invalid.
func ParseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment.Name == "production"
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
