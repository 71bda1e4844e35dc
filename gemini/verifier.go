// Package gemini implements kashi.Verifier with Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/kashi"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for verification.
const DefaultModel = "gemini-2.5-flash"

// Generation limits for verification replies.
const (
	MaxOutputTokens = 200
	Temperature     = 0.3
)

// Ensure Verifier implements kashi.Verifier at compile time.
var _ kashi.Verifier = (*Verifier)(nil)

// Verifier asks Gemini to critique a romanization.
type Verifier struct {
	client *genai.Client
	model  string
}

// NewVerifier creates a new Verifier. An empty model selects DefaultModel.
func NewVerifier(client *genai.Client, model string) *Verifier {
	if model == "" {
		model = DefaultModel
	}
	return &Verifier{client: client, model: model}
}

// Verify returns Gemini's assessment of romanized against original.
func (v *Verifier) Verify(ctx context.Context, original, romanized string) (string, error) {
	if strings.TrimSpace(original) == "" {
		return "", kashi.Errorf(kashi.EINVALID, "original text required")
	}
	if strings.TrimSpace(romanized) == "" {
		return "", kashi.Errorf(kashi.EINVALID, "romanized text required")
	}

	result, err := v.client.Models.GenerateContent(ctx, v.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: kashi.VerifyPrompt(original, romanized)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", kashi.Errorf(kashi.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", kashi.Errorf(kashi.EINTERNAL, "gemini returned empty verification")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for verification calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(Temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a Japanese language expert who checks romaji transliterations of song lyrics.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: MaxOutputTokens,
	}
}
