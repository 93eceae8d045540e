// Package llm calls an OpenAI-compatible chat-completion endpoint with a single user turn.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/feishu-llm-relay/internal/config"
	"github.com/sashabaranov/go-openai"
)

const defaultTimeout = 60 * time.Second

var (
	// ErrNoChoices is returned when the completion response carries no choices.
	ErrNoChoices = errors.New("no choices in completion response")
	// ErrEmptyReply is returned when the first choice has no content.
	ErrEmptyReply = errors.New("empty completion content")
)

// Client for the chat-completion API.
type Client struct {
	openAIClient *openai.Client
	model        string
}

// New creates a new Client. A nil httpClient gets a default client with a timeout.
func New(settings *config.Settings, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	openAICfg := openai.DefaultConfig(settings.LLMAPIKey)
	openAICfg.BaseURL = settings.LLMBaseURL
	openAICfg.HTTPClient = httpClient

	return &Client{
		openAIClient: openai.NewClientWithConfig(openAICfg),
		model:        settings.LLMModel,
	}
}

// Complete sends text as the only user message, with no history and no system prompt.
// Failures are returned inside the Reply, never as a separate error.
func (c *Client) Complete(ctx context.Context, text string) Reply {
	resp, err := c.openAIClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return Failed(fmt.Errorf("chat completion failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		return Failed(ErrNoChoices)
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return Failed(ErrEmptyReply)
	}
	return Ok(content)
}
