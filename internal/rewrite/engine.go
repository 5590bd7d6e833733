package rewrite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Engine rephrases single sentences. Availability is decided at
// construction from configuration, so callers can surface a stable
// "rewrite unavailable" state instead of probing per call.
type Engine interface {
	Available() bool
	Rephrase(ctx context.Context, sentence string, style Style) Outcome
}

// Unavailable is the engine used when no rewrite backend is
// configured. Every call reports the same known failure.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Available() bool { return false }

func (u Unavailable) Rephrase(context.Context, string, Style) Outcome {
	reason := u.Reason
	if reason == "" {
		reason = "rewrite engine not configured"
	}
	return KnownFailure(reason)
}

// ClientConfig carries the connection settings for the OpenAI-style
// backend. BaseURL may point at any compatible local server.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

const defaultModel = "gpt-4o-mini"

// OpenAIEngine talks to an OpenAI-compatible chat completion API.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewEngine builds the configured engine. Without an API key or base
// URL there is nothing to talk to, so the Unavailable variant is
// returned instead.
func NewEngine(cfg ClientConfig) Engine {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return Unavailable{Reason: "no rewrite backend configured"}
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &OpenAIEngine{
		client: openai.NewClientWithConfig(cc),
		model:  model,
	}
}

func (e *OpenAIEngine) Available() bool { return true }

// Rephrase asks the model for a single rewritten sentence. API errors
// are known failures; anything else is unexpected.
func (e *OpenAIEngine) Rephrase(ctx context.Context, sentence string, style Style) Outcome {
	if strings.TrimSpace(sentence) == "" {
		return KnownFailure("nothing to rewrite")
	}

	system := "You rewrite one sentence at a time. " + style.Instruction() +
		" Respond with the rewritten sentence only: no quotes, no commentary." +
		" Preserve the original meaning exactly; never invent content."

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: sentence},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return KnownFailure(fmt.Sprintf("service rejected the request: %s", apiErr.Message))
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return KnownFailure("request cancelled")
		}
		return UnexpectedFailure(err.Error())
	}
	if len(resp.Choices) == 0 {
		return KnownFailure("model returned no choices")
	}

	rewritten := strings.TrimSpace(resp.Choices[0].Message.Content)
	if rewritten == "" {
		return KnownFailure("model returned an empty rewrite")
	}
	return Ok(sentence, rewritten)
}
