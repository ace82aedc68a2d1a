package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderMock      = "mock"
)

// Config holds all application configuration.
type Config struct {
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	Provider string `yaml:"provider" validate:"oneof=anthropic openai mock"`

	// AnthropicAPIKey may be empty: the server still starts, reports the
	// generator unavailable on /health, and each request fails upstream.
	AnthropicAPIKey  string `yaml:"anthropic_api_key"`
	AnthropicModel   string `yaml:"anthropic_model" validate:"required_if=Provider anthropic"`
	AnthropicBaseURL string `yaml:"anthropic_base_url" validate:"omitempty,url"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url" validate:"omitempty,url"`
	OpenAIModel   string `yaml:"openai_model" validate:"required_if=Provider openai"`

	APIKey string `yaml:"api_key"`
	// RateLimit is POSTs per minute per client IP; 0 (the default) disables it.
	RateLimit      int           `yaml:"rate_limit" validate:"min=0"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" validate:"min=1"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"min=0"`
	// UpstreamTimeout bounds each provider call; 0 leaves it to the client library.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout" validate:"min=0"`
	StaticDir       string        `yaml:"static_dir"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
}

func defaults() Config {
	return Config{
		Port:           5000,
		Provider:       ProviderAnthropic,
		AnthropicModel: "claude-sonnet-4-20250514",
		OpenAIModel:    "gpt-4o-mini",
		MaxBodyBytes:   10 << 20,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadDotenv loads KEY=value pairs from the given files (default ".env")
// into the process environment. Missing files are ignored; variables
// already set win.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}
	return nil
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies environment variable overrides. An empty path returns defaults + env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"ALFA_PROVIDER", &cfg.Provider},
		{"ANTHROPIC_API_KEY", &cfg.AnthropicAPIKey},
		{"ANTHROPIC_MODEL", &cfg.AnthropicModel},
		{"ANTHROPIC_BASE_URL", &cfg.AnthropicBaseURL},
		{"OPENAI_API_KEY", &cfg.OpenAIAPIKey},
		{"OPENAI_BASE_URL", &cfg.OpenAIBaseURL},
		{"OPENAI_MODEL", &cfg.OpenAIModel},
		{"ALFA_API_KEY", &cfg.APIKey},
		{"ALFA_STATIC_DIR", &cfg.StaticDir},
		{"ALFA_LOG_LEVEL", &cfg.LogLevel},
		{"ALFA_LOG_FORMAT", &cfg.LogFormat},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("ALFA_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ALFA_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = n
	}
	if v := os.Getenv("ALFA_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid ALFA_MAX_BODY_BYTES %q: %w", v, err)
		}
		cfg.MaxBodyBytes = n
	}

	durs := []struct {
		key string
		dst *time.Duration
	}{
		{"ALFA_REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"ALFA_UPSTREAM_TIMEOUT", &cfg.UpstreamTimeout},
	}
	for _, d := range durs {
		if v := os.Getenv(d.key); v != "" {
			dur, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("config: invalid %s %q: %w", d.key, v, err)
			}
			*d.dst = dur
		}
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. Call it after flag overrides.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.ActualTag(), redact(fe)))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
}

func redact(fe validator.FieldError) any {
	if strings.Contains(strings.ToLower(fe.Field()), "key") {
		return "<redacted>"
	}
	return fe.Value()
}
