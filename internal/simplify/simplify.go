// Package simplify implements the three Lectura Fácil operations on top of
// an injected generation backend. Each call makes exactly one provider
// request and reports failures as *Error values.
package simplify

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/adapter"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/metrics"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/prompt"
)

// Operation labels used in logs and metrics.
const (
	OpText  = "texto"
	OpImage = "imagen"
	OpTerm  = "termino"
)

type Service struct {
	gen    adapter.Generator
	logger *slog.Logger
}

func New(gen adapter.Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gen: gen, logger: logger}
}

// Generator returns the backend the service was built with.
func (s *Service) Generator() adapter.Generator { return s.gen }

type TextResult struct {
	Original   string
	Simplified string
	TokensUsed int
}

type ImageResult struct {
	Response   string
	MediaType  string
	TokensUsed int
}

type TermResult struct {
	Term        string
	Explanation string
	TokensUsed  int
}

// SimplifyText rewrites text in Lectura Fácil. Original is text unchanged.
func (s *Service) SimplifyText(ctx context.Context, text string) (TextResult, error) {
	res, err := s.generate(ctx, OpText, text, adapter.Request{
		Prompt:    prompt.Text(text),
		MaxTokens: prompt.TextMaxTokens,
	})
	if err != nil {
		return TextResult{}, err
	}
	return TextResult{Original: text, Simplified: res.Text, TokensUsed: res.TokensUsed}, nil
}

// SimplifyImage extracts and simplifies the text in an image given as a
// data URI or raw base64. The provider answer is returned verbatim.
func (s *Service) SimplifyImage(ctx context.Context, raw string) (ImageResult, error) {
	img := ParseImage(raw)
	if m := detectImageType(img.Data); m != nil && !m.Is(img.MediaType) {
		s.logger.WarnContext(ctx, "image content does not match declared type",
			"declared", img.MediaType,
			"detected", m.String(),
		)
	}

	res, err := s.generate(ctx, OpImage, raw, adapter.Request{
		Prompt:    prompt.Image(),
		Image:     &img,
		MaxTokens: prompt.ImageMaxTokens,
	})
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{Response: res.Text, MediaType: img.MediaType, TokensUsed: res.TokensUsed}, nil
}

// ExplainTerm explains a single word or phrase in everyday language.
func (s *Service) ExplainTerm(ctx context.Context, term string) (TermResult, error) {
	res, err := s.generate(ctx, OpTerm, term, adapter.Request{
		Prompt:    prompt.Term(term),
		MaxTokens: prompt.TermMaxTokens,
	})
	if err != nil {
		return TermResult{}, err
	}
	return TermResult{Term: term, Explanation: res.Text, TokensUsed: res.TokensUsed}, nil
}

func (s *Service) generate(ctx context.Context, op, input string, req adapter.Request) (adapter.Result, error) {
	metrics.InputChars.WithLabelValues(op).Observe(float64(utf8.RuneCountInString(input)))

	start := time.Now()
	res, err := s.gen.Generate(ctx, req)
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GenerationErrors.WithLabelValues(op).Inc()
		s.logger.ErrorContext(ctx, "generation failed",
			"operation", op,
			"generator", s.gen.Name(),
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return adapter.Result{}, upstream(err)
	}

	metrics.TokensUsed.WithLabelValues(op).Add(float64(res.TokensUsed))
	s.logger.InfoContext(ctx, "generation",
		"operation", op,
		"generator", s.gen.Name(),
		"tokens", res.TokensUsed,
		"duration_ms", elapsed.Milliseconds(),
	)
	return res, nil
}
