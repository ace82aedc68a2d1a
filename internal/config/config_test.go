package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ALFA_PROVIDER", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "ALFA_API_KEY", "ALFA_STATIC_DIR",
		"ALFA_LOG_LEVEL", "ALFA_LOG_FORMAT", "ALFA_RATE_LIMIT", "ALFA_MAX_BODY_BYTES",
		"ALFA_REQUEST_TIMEOUT", "ALFA_UPSTREAM_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"port", cfg.Port, 5000},
		{"provider", cfg.Provider, ProviderAnthropic},
		{"anthropic_model", cfg.AnthropicModel, "claude-sonnet-4-20250514"},
		{"anthropic_api_key", cfg.AnthropicAPIKey, ""},
		{"openai_model", cfg.OpenAIModel, "gpt-4o-mini"},
		{"api_key", cfg.APIKey, ""},
		{"rate_limit disabled", cfg.RateLimit, 0},
		{"max_body_bytes", cfg.MaxBodyBytes, int64(10 << 20)},
		{"request_timeout", cfg.RequestTimeout, time.Duration(0)},
		{"upstream_timeout", cfg.UpstreamTimeout, time.Duration(0)},
		{"log_level", cfg.LogLevel, "info"},
		{"log_format", cfg.LogFormat, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	content := `port: 9999
provider: openai
anthropic_api_key: "sk-ant-test"
openai_base_url: "http://localhost:8080"
openai_model: "qwen2.5-1.5b"
api_key: "my-secret-key"
rate_limit: 5
max_body_bytes: 2048
request_timeout: 90s
upstream_timeout: 1m
static_dir: "/srv/www"
log_level: debug
log_format: json
`
	if err := os.WriteFile(yamlPath, []byte(content), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"port", cfg.Port, 9999},
		{"provider", cfg.Provider, ProviderOpenAI},
		{"anthropic_api_key", cfg.AnthropicAPIKey, "sk-ant-test"},
		{"anthropic_model default kept", cfg.AnthropicModel, "claude-sonnet-4-20250514"},
		{"openai_base_url", cfg.OpenAIBaseURL, "http://localhost:8080"},
		{"openai_model", cfg.OpenAIModel, "qwen2.5-1.5b"},
		{"api_key", cfg.APIKey, "my-secret-key"},
		{"rate_limit", cfg.RateLimit, 5},
		{"max_body_bytes", cfg.MaxBodyBytes, int64(2048)},
		{"request_timeout", cfg.RequestTimeout, 90 * time.Second},
		{"upstream_timeout", cfg.UpstreamTimeout, time.Minute},
		{"static_dir", cfg.StaticDir, "/srv/www"},
		{"log_level", cfg.LogLevel, "debug"},
		{"log_format", cfg.LogFormat, "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	content := `port: 9999
anthropic_api_key: "from-yaml"
`
	if err := os.WriteFile(yamlPath, []byte(content), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	t.Setenv("PORT", "7777")
	t.Setenv("ANTHROPIC_API_KEY", "sk-env-key")
	t.Setenv("ANTHROPIC_MODEL", "claude-opus-4-1")
	t.Setenv("ALFA_API_KEY", "env-api-key")
	t.Setenv("ALFA_RATE_LIMIT", "12")
	t.Setenv("ALFA_UPSTREAM_TIMEOUT", "45s")

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"port from env", cfg.Port, 7777},
		{"anthropic_api_key from env", cfg.AnthropicAPIKey, "sk-env-key"},
		{"anthropic_model from env", cfg.AnthropicModel, "claude-opus-4-1"},
		{"api_key from env", cfg.APIKey, "env-api-key"},
		{"rate_limit from env", cfg.RateLimit, 12},
		{"upstream_timeout from env", cfg.UpstreamTimeout, 45 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	for _, kv := range [][2]string{
		{"PORT", "abc"},
		{"ALFA_RATE_LIMIT", "many"},
		{"ALFA_MAX_BODY_BYTES", "1MB"},
		{"ALFA_REQUEST_TIMEOUT", "soon"},
	} {
		t.Run(kv[0], func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if _, err := Load(""); err == nil {
				t.Errorf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(yamlPath, []byte("{{invalid"), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	_, err := Load(yamlPath)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("ANTHROPIC_API_KEY")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("ANTHROPIC_API_KEY=sk-from-dotenv\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotenv(envPath, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AnthropicAPIKey != "sk-from-dotenv" {
		t.Errorf("anthropic_api_key: got %q, want %q", cfg.AnthropicAPIKey, "sk-from-dotenv")
	}
}

func TestValidate(t *testing.T) {
	valid := defaults()
	valid.AnthropicAPIKey = "sk-test"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid anthropic", func(c *Config) {}, ""},
		{"mock needs no key", func(c *Config) { c.Provider = ProviderMock; c.AnthropicAPIKey = "" }, ""},
		{"openai local server", func(c *Config) { c.Provider = ProviderOpenAI; c.OpenAIBaseURL = "http://localhost:8080" }, ""},
		{"missing anthropic key still starts", func(c *Config) { c.AnthropicAPIKey = "" }, ""},
		{"missing anthropic model", func(c *Config) { c.AnthropicModel = "" }, "AnthropicModel"},
		{"unknown provider", func(c *Config) { c.Provider = "gemini" }, "Provider"},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "Port"},
		{"negative rate limit", func(c *Config) { c.RateLimit = -1 }, "RateLimit"},
		{"zero body limit", func(c *Config) { c.MaxBodyBytes = 0 }, "MaxBodyBytes"},
		{"bad base url", func(c *Config) { c.OpenAIBaseURL = "not a url" }, "OpenAIBaseURL"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRedactsKeys(t *testing.T) {
	cfg := defaults()
	cfg.AnthropicAPIKey = "sk-secret"
	cfg.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "sk-secret") {
		t.Errorf("error leaks the key: %v", err)
	}
}
