package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/adapter"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/config"
)

var (
	configPath string
	useMock    bool
	port       int

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "alfabetizacion",
	Short: "Asistente de alfabetización: simplifica textos, imágenes y términos.",
	Long: `Servicio HTTP que reescribe textos administrativos en Lectura Fácil,
extrae y simplifica el texto de imágenes y explica términos difíciles.
Sin subcomando arranca el servidor.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotenv(); err != nil {
			return err
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if useMock {
			loaded.Provider = config.ProviderMock
		}
		if port > 0 {
			loaded.Port = port
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(newLogger(cfg))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "use the mock generator instead of a real provider")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "override listen port")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// buildGenerator returns the generator selected by cfg.Provider.
func buildGenerator(cfg config.Config) adapter.Generator {
	client := &http.Client{Timeout: cfg.UpstreamTimeout}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return &adapter.OpenAIAdapter{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Client:  client,
		}
	case config.ProviderMock:
		return &adapter.MockAdapter{}
	default:
		return &adapter.ClaudeAdapter{
			BaseURL: cfg.AnthropicBaseURL,
			APIKey:  cfg.AnthropicAPIKey,
			Model:   cfg.AnthropicModel,
			Client:  client,
		}
	}
}
