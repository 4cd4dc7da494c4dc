package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultPort      = "8080"
	DefaultAITimeout = 10 * time.Second
)

var ValidProviders = []string{ProviderOpenAI, ProviderGemini}

// Config es toda la configuración del proceso.
// Orden: defaults -> archivo YAML (opcional) -> variables de entorno.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	AI       AIConfig       `yaml:"ai"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               string   `yaml:"port"`
	PublicBaseURL      string   `yaml:"public_base_url"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type AIConfig struct {
	Provider     string `yaml:"provider"` // openai | gemini
	OpenAIAPIKey string `yaml:"openai_api_key"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	Model        string `yaml:"model"`
	BaseURL      string `yaml:"base_url"`
	Timeout      string `yaml:"timeout"` // time.ParseDuration
}

// DatabaseConfig: DSN vacío => storage en memoria.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
	App    string `yaml:"app"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               DefaultPort,
			CORSAllowedOrigins: []string{"*"},
		},
		AI: AIConfig{
			Provider: ProviderOpenAI,
			Timeout:  DefaultAITimeout.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "pawstars-api",
		},
	}
}

// LoadDotEnv carga .env si existe. Un archivo ausente no es error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// Load arma la config. path vacío => solo defaults + entorno.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("config file %s not found", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setIf(&c.Server.Port, "PORT")
	setIf(&c.Server.PublicBaseURL, "PUBLIC_BASE_URL")
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		c.Server.CORSAllowedOrigins = splitList(v)
	}

	setIf(&c.AI.Provider, "AI_PROVIDER")
	setIf(&c.AI.OpenAIAPIKey, "OPENAI_API_KEY")
	setIf(&c.AI.GeminiAPIKey, "GEMINI_API_KEY")
	setIf(&c.AI.Model, "AI_MODEL")
	setIf(&c.AI.BaseURL, "AI_BASE_URL")
	setIf(&c.AI.Timeout, "AI_TIMEOUT")

	setIf(&c.Database.DSN, "DB_DSN")

	setIf(&c.Logging.Level, "LOG_LEVEL")
	setIf(&c.Logging.Format, "LOG_FORMAT")
	setIf(&c.Logging.App, "APP_NAME")
}

// Validate: una API key ausente es válida (modo solo fallback).
func (c *Config) Validate() error {
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	valid := false
	for _, p := range ValidProviders {
		if c.AI.Provider == p {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid AI provider: %q (valid: %v)", c.AI.Provider, ValidProviders)
	}

	if strings.TrimSpace(c.AI.Timeout) != "" {
		d, err := time.ParseDuration(c.AI.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid AI timeout: %q", c.AI.Timeout)
		}
	}

	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("port is required")
	}
	return nil
}

// APIKey devuelve la credencial del proveedor elegido ("" => no configurado).
func (c *Config) APIKey() string {
	switch c.AI.Provider {
	case ProviderGemini:
		return strings.TrimSpace(c.AI.GeminiAPIKey)
	default:
		return strings.TrimSpace(c.AI.OpenAIAPIKey)
	}
}

func (c *Config) AITimeout() time.Duration {
	d, err := time.ParseDuration(c.AI.Timeout)
	if err != nil || d <= 0 {
		return DefaultAITimeout
	}
	return d
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Server.Port), ":")
}

func setIf(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
