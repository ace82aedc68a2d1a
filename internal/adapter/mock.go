package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns simulated responses with a configurable delay.
// Used for development and testing without a real provider.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Name() string { return "Mock" }

// Generate echoes the last non-empty line of the prompt, which for the
// text and term templates is the closing instruction, prefixed so callers
// can tell it is simulated. Token usage is the word count of the prompt.
func (m *MockAdapter) Generate(ctx context.Context, req Request) (Result, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return Result{}, fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	text := "[simulado] " + lastLine(req.Prompt)
	if req.Image != nil {
		text = fmt.Sprintf("TEXTO EXTRAÍDO:\n[imagen %s]\n\nVERSIÓN EN LECTURA FÁCIL:\n%s", req.Image.MediaType, text)
	}

	return Result{Text: text, TokensUsed: len(strings.Fields(req.Prompt))}, nil
}

func (m *MockAdapter) Available() bool { return true }

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
