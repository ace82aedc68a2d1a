package adapter

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider replies without any text.
var ErrEmptyResponse = errors.New("empty response content")

// Generator defines the contract for generation backends.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (Result, error)
	Available() bool
}

// Image is an inline image sent alongside the prompt.
type Image struct {
	MediaType string
	Data      string // base64 payload, no data URI prefix
}

// Request is a single user turn: a prompt and an optional image.
type Request struct {
	Prompt    string
	Image     *Image
	MaxTokens int
}

// Result is the generated text plus input+output token usage.
type Result struct {
	Text       string
	TokensUsed int
}
