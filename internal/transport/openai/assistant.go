// Package openai adapts the OpenAI-compatible chat API to the assistant contract.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/laundromatzat/foliodex/internal/domain"
	"github.com/laundromatzat/foliodex/internal/metrics"
)

// Compile-time check: Completer implements domain.Completer.
var _ domain.Completer = (*Completer)(nil)

const systemPrompt = `You are the search assistant for a creative portfolio site
featuring photography, video, cinemagraph, and tool projects. When the visitor
asks about the work, call the search_projects function with terms drawn from
their message. Answer plain questions directly and briefly.`

// searchToolSchema describes the search_projects function parameters.
var searchToolSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"query": {"type": "string", "description": "Free-text search terms"},
		"type": {"type": "string", "enum": ["photo", "video", "cinemagraph", "tool"]},
		"date_from": {"type": "string", "description": "Earliest date, e.g. 06/2019 or 2019"},
		"date_to": {"type": "string", "description": "Latest date, e.g. 12/2021 or 2021"},
		"include_tags": {"type": "array", "items": {"type": "string"}},
		"exclude_tags": {"type": "array", "items": {"type": "string"}}
	}
}`)

// Completer is a chat provider using the OpenAI-compatible API.
type Completer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the chat provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewCompleter creates an OpenAI-compatible chat provider. A positive Timeout
// bounds each provider call end to end, including response body reads.
func NewCompleter(cfg *Config) *Completer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Completer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Complete implements domain.Completer. A tool call in the response is decoded
// into a SearchCall; plain answers pass through as text.
func (c *Completer) Complete(ctx context.Context, message string) (domain.Completion, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "search_projects",
				Description: "Search the project catalog",
				Parameters:  searchToolSchema,
			},
		}},
	}

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.AssistantRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return domain.Completion{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.AssistantRequestsTotal.WithLabelValues(c.model, "error").Inc()
		return domain.Completion{}, fmt.Errorf("empty chat response: %w", domain.ErrAssistantProviderError)
	}

	metrics.AssistantRequestsTotal.WithLabelValues(c.model, "success").Inc()
	metrics.AssistantRequestDuration.WithLabelValues(c.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.AssistantTokensTotal.WithLabelValues(c.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.AssistantTokensTotal.WithLabelValues(c.model, "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	msg := resp.Choices[0].Message
	completion := domain.Completion{Text: msg.Content}

	if len(msg.ToolCalls) > 0 {
		call, err := decodeSearchCall(msg.ToolCalls[0])
		if err != nil {
			// A malformed tool call degrades to the prose answer.
			c.logger.Warn("assistant tool call ignored", zap.Error(err))
			return completion, nil
		}
		completion.Call = call
	}

	return completion, nil
}

func decodeSearchCall(tc openai.ToolCall) (*domain.SearchCall, error) {
	if tc.Function.Name != "search_projects" {
		return nil, fmt.Errorf("unexpected tool %q", tc.Function.Name)
	}

	var args struct {
		Query       string   `json:"query"`
		Type        string   `json:"type"`
		DateFrom    string   `json:"date_from"`
		DateTo      string   `json:"date_to"`
		IncludeTags []string `json:"include_tags"`
		ExcludeTags []string `json:"exclude_tags"`
	}
	if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	return &domain.SearchCall{
		Query:       args.Query,
		Type:        args.Type,
		DateFrom:    args.DateFrom,
		DateTo:      args.DateTo,
		IncludeTags: args.IncludeTags,
		ExcludeTags: args.ExcludeTags,
	}, nil
}

// parseAPIError extracts a human-readable error from the API response.
// Rate limits map to their own sentinel for correct 429 handling upstream.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("chat API error %d: %w", reqErr.HTTPStatusCode, domain.ErrAssistantRateLimited)
		}
		return fmt.Errorf("chat API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), domain.ErrAssistantProviderError)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("chat API error %d: %s: %w",
				apiErr.HTTPStatusCode, apiErr.Message, domain.ErrAssistantRateLimited)
		}
		return fmt.Errorf("chat API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, domain.ErrAssistantProviderError)
	}

	return fmt.Errorf("chat request failed: %w", domain.ErrAssistantProviderError)
}
