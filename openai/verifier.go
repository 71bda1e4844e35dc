// Package openai implements kashi.Verifier with the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/kashi"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is the chat model used for verification.
const DefaultModel = "gpt-3.5-turbo"

// Generation limits for verification replies.
const (
	MaxTokens   = 200
	Temperature = 0.3
)

// Ensure Verifier implements kashi.Verifier at compile time.
var _ kashi.Verifier = (*Verifier)(nil)

// Verifier asks an OpenAI chat model to critique a romanization.
type Verifier struct {
	client openai.Client
	model  string
}

// Config configures a Verifier.
type Config struct {
	APIKey string

	// BaseURL overrides the API endpoint, for compatible providers and tests.
	BaseURL string

	// Model defaults to DefaultModel.
	Model string

	// MaxRetries overrides the client's retry count when non-nil.
	MaxRetries *int
}

// NewVerifier creates a new Verifier.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.APIKey == "" {
		return nil, kashi.Errorf(kashi.EINVALID, "OpenAI API key required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries != nil {
		opts = append(opts, option.WithMaxRetries(*cfg.MaxRetries))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Verifier{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Verify returns the model's assessment of romanized against original.
func (v *Verifier) Verify(ctx context.Context, original, romanized string) (string, error) {
	if strings.TrimSpace(original) == "" {
		return "", kashi.Errorf(kashi.EINVALID, "original text required")
	}
	if strings.TrimSpace(romanized) == "" {
		return "", kashi.Errorf(kashi.EINVALID, "romanized text required")
	}

	resp, err := v.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(v.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(kashi.VerifyPrompt(original, romanized)),
		},
		MaxTokens:   openai.Int(MaxTokens),
		Temperature: openai.Float(Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", kashi.Errorf(kashi.ERATELIMIT, "OpenAI rate limit exceeded")
		}
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", kashi.Errorf(kashi.EINTERNAL, "no choices in response")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", kashi.Errorf(kashi.EINTERNAL, "OpenAI returned empty verification")
	}
	return text, nil
}
