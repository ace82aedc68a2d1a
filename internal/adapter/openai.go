package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAdapter connects to any OpenAI-compatible /v1/chat/completions
// server: OpenAI itself, llama-server, or Ollama's /v1 endpoint.
type OpenAIAdapter struct {
	BaseURL string // without the /v1 suffix; empty means api.openai.com
	APIKey  string
	Model   string
	Client  *http.Client

	once sync.Once
	api  *openai.Client
}

func (o *OpenAIAdapter) Name() string {
	return fmt.Sprintf("OpenAI-compatible (%s)", o.Model)
}

func (o *OpenAIAdapter) client() *openai.Client {
	o.once.Do(func() {
		cfg := openai.DefaultConfig(o.APIKey)
		if o.BaseURL != "" {
			cfg.BaseURL = strings.TrimRight(o.BaseURL, "/") + "/v1"
		}
		if o.Client != nil {
			cfg.HTTPClient = o.Client
		}
		o.api = openai.NewClientWithConfig(cfg)
	})
	return o.api
}

func (o *OpenAIAdapter) Generate(ctx context.Context, req Request) (Result, error) {
	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if req.Image != nil {
		msg.MultiContent = []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", req.Image.MediaType, req.Image.Data),
				},
			},
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
		}
	} else {
		msg.Content = req.Prompt
	}

	resp, err := o.client().CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.Model,
		MaxTokens: req.MaxTokens,
		Messages:  []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		return Result{}, fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return Result{}, fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	return Result{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.PromptTokens + resp.Usage.CompletionTokens,
	}, nil
}

// Available reports whether a key is set. Local servers accept any key,
// so an empty key is only a problem against api.openai.com.
func (o *OpenAIAdapter) Available() bool {
	return o.APIKey != "" || o.BaseURL != ""
}
