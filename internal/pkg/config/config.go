package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port        int    `yaml:"port"`
	Environment string `yaml:"environment"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// LeadProsperConfig holds transport settings for the partner call. The
// credential 4-tuple itself is resolved per request from the environment,
// see credentials.go.
type LeadProsperConfig struct {
	HTTPTimeout time.Duration `yaml:"http_timeout_seconds"`
}

// TokenConfig holds the HMAC secret signing thank-you access grants.
type TokenConfig struct {
	Secret string `yaml:"secret"`
}

type OtelConfig struct {
	ServiceName  string `yaml:"service_name"`
	CollectorURL string `yaml:"collector_url"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server      ServerConfig      `yaml:"server"`
	Logging     LogConfig         `yaml:"logging"`
	LeadProsper LeadProsperConfig `yaml:"lead_prosper"`
	Token       TokenConfig       `yaml:"token"`
	Otel        OtelConfig        `yaml:"otel"`
}

// IsProduction gates the Secure attribute on the thank-you cookie.
func (c *AppConfig) IsProduction() bool {
	return c.Server.Environment == "production"
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", defaultInt(cfg.Server.Port, 8080))
	cfg.Server.Environment = GetEnvOrDefaultAsString("ENVIRONMENT", defaultString(cfg.Server.Environment, "development"))

	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOG_LEVEL", defaultString(cfg.Logging.LogLevel, "info"))

	// The yaml field is a bare seconds count.
	timeoutSeconds := int(cfg.LeadProsper.HTTPTimeout)
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	timeoutSeconds = GetEnvOrDefaultAsInt("LEAD_PROSPER_HTTP_TIMEOUT_SECONDS", timeoutSeconds)
	cfg.LeadProsper.HTTPTimeout = time.Duration(timeoutSeconds) * time.Second

	cfg.Token.Secret = GetEnvOrDefaultAsString("THANKYOU_TOKEN_SECRET", cfg.Token.Secret)

	cfg.Otel.ServiceName = GetEnvOrDefaultAsString("SERVICE_NAME", defaultString(cfg.Otel.ServiceName, "lead-capture"))
	cfg.Otel.CollectorURL = GetEnvOrDefaultAsString("OTEL_URL", cfg.Otel.CollectorURL)

	return cfg
}

// LoadFromConfigFilePath loads and parses a config file into AppConfig.
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		return nil, err
	}

	return defaultCfg, nil
}

// LoadFromConfig loads .env, then the config file named by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Token.Secret == "" {
		return consts.ErrorTokenSecretMissing
	}
	if cfg.LeadProsper.HTTPTimeout <= 0 {
		return fmt.Errorf("lead_prosper.http_timeout_seconds must be positive, got %v", cfg.LeadProsper.HTTPTimeout)
	}
	return nil
}

// GetEnvOrDefaultAsString returns the value of the given env variable or the
// default value if not set or empty.
func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if val != "" {
			return val
		}
	}
	return defaultVal
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
