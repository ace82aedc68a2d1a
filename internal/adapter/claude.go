package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

const claudeDefaultBaseURL = "https://api.anthropic.com"

// ClaudeAdapter connects to the Anthropic Messages API. The SDK client is
// built on first use from the exported fields, which must not change after.
type ClaudeAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client

	once sync.Once
	api  *anthropic.Client
}

func (c *ClaudeAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", c.Model)
}

func (c *ClaudeAdapter) client() *anthropic.Client {
	c.once.Do(func() {
		baseURL := c.BaseURL
		if baseURL == "" {
			baseURL = claudeDefaultBaseURL
		}
		opts := []anthropic.ClientOption{
			anthropic.WithBaseURL(strings.TrimRight(baseURL, "/") + "/v1"),
		}
		if c.Client != nil {
			opts = append(opts, anthropic.WithHTTPClient(c.Client))
		}
		c.api = anthropic.NewClient(c.APIKey, opts...)
	})
	return c.api
}

func (c *ClaudeAdapter) Generate(ctx context.Context, req Request) (Result, error) {
	content := make([]anthropic.MessageContent, 0, 2)
	if req.Image != nil {
		content = append(content, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(anthropic.MessagesContentSourceTypeBase64, req.Image.MediaType, req.Image.Data),
		))
	}
	content = append(content, anthropic.NewTextMessageContent(req.Prompt))

	resp, err := c.client().CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.Model),
		MaxTokens: req.MaxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("claude: %w", err)
	}

	if len(resp.Content) == 0 {
		return Result{}, fmt.Errorf("claude: %w", ErrEmptyResponse)
	}

	// The first text block is the answer; images never come back.
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			return Result{
				Text:       *block.Text,
				TokensUsed: resp.Usage.InputTokens + resp.Usage.OutputTokens,
			}, nil
		}
	}
	return Result{}, fmt.Errorf("claude: %w", ErrEmptyResponse)
}

func (c *ClaudeAdapter) Available() bool {
	return c.APIKey != ""
}
