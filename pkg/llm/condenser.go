// Package llm condenses paper abstracts with an OpenAI-compatible model.
// Optional: when no endpoint is configured the bot announces the plain
// truncated abstract instead.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// default system prompt for abstract condensing
const defaultSystemPrompt = `You condense arXiv paper abstracts. Rewrite the abstract into a short,
information-dense summary of at most %d characters. Keep the key contribution,
method and result. Write about the content directly, never start with phrases
like "The paper presents" or "The authors propose". Preserve LaTeX notation
as-is. Reply with the summary only.`

// Config holds condenser configuration
type Config struct {
	Endpoint     string
	APIKey       string
	Model        string
	MaxTokens    int
	Temperature  float32
	SystemPrompt string
	TargetLength int // upper bound for the condensed summary, in characters
}

// Condenser rewrites abstracts through an OpenAI-compatible endpoint
type Condenser struct {
	client    *openai.Client
	config    Config
	systemMsg string
}

// NewCondenser creates a condenser for the configured endpoint and model
func NewCondenser(cfg Config) *Condenser {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 300
	}
	if cfg.TargetLength == 0 {
		cfg.TargetLength = 512
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = fmt.Sprintf(defaultSystemPrompt, cfg.TargetLength)
	}

	return &Condenser{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Condense returns a condensed version of the abstract. Abstracts already
// within the target length are returned unchanged.
func (c *Condenser) Condense(ctx context.Context, text string) (string, error) {
	if len(text) <= c.config.TargetLength {
		return text, nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
