// Package ai wraps the chat and embedding model providers used by the
// concierge and the similarity features.
package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	stderrors "handbag-explorer/internal/common/errors"
	"handbag-explorer/internal/common/metrics"
)

// ChatProvider produces a completion for a system/user prompt pair.
type ChatProvider interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// EmbeddingProvider converts text into a dense vector.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config carries the model provider settings.
type Config struct {
	BaseURL        string
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Temperature    float32
	MaxTokens      int
}

// Client implements ChatProvider and EmbeddingProvider on the OpenAI
// API surface, which also fronts compatible self-hosted gateways via
// BaseURL.
type Client struct {
	api *openai.Client
	cfg Config
}

// NewClient builds an API client from provider settings.
func NewClient(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api: openai.NewClientWithConfig(apiCfg),
		cfg: cfg,
	}
}

// Complete runs a single-turn chat completion.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	metrics.ProviderCallDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("chat", "error").Inc()
		if ctx.Err() != nil {
			return "", stderrors.NewLLMTimeoutError()
		}
		return "", stderrors.NewConciergeFailedError(err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("chat", "success").Inc()
	if len(resp.Choices) == 0 {
		return "", stderrors.NewConciergeFailedError(fmt.Errorf("completion returned no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed generates an embedding vector for one text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.cfg.EmbeddingModel),
		Input: []string{text},
	})
	metrics.ProviderCallDuration.WithLabelValues("embedding").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("embedding", "error").Inc()
		return nil, stderrors.NewEmbeddingFailedError(err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("embedding", "success").Inc()
	if len(resp.Data) == 0 {
		return nil, stderrors.NewEmbeddingFailedError(fmt.Errorf("embedding response was empty"))
	}
	return resp.Data[0].Embedding, nil
}
