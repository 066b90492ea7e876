package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 2000
)

// Generator wraps the Anthropic client to provide simple prompt-based interactions.
type Generator struct {
	client    *anthropic.Client
	modelName string
	maxTokens int
}

// NewGenerator creates a new Generator backed by the Anthropic Messages API.
func NewGenerator(apiKey, model string, maxTokens int) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Generator{
		client:    anthropic.NewClient(apiKey),
		modelName: model,
		maxTokens: maxTokens,
	}, nil
}

// GenerateContent sends the prompt to Claude and returns the first textual response.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("claude generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(g.modelName),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("create messages: %w", err)
	}

	var builder strings.Builder
	for _, content := range resp.Content {
		if content.Text == nil {
			continue
		}
		text := strings.TrimSpace(*content.Text)
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("anthropic api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
