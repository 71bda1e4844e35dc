package kashi

import (
	"context"
	"fmt"
)

// Verifier asks a language model to critique a romanization.
type Verifier interface {
	// Verify returns a natural-language assessment of how well romanized
	// represents the pronunciation of original.
	// Returns EINVALID if either text is empty.
	Verify(ctx context.Context, original, romanized string) (string, error)
}

// VerifyPrompt builds the verification prompt shared by all providers.
func VerifyPrompt(original, romanized string) string {
	return fmt.Sprintf(`Please verify if this romaji translation is accurate for the Japanese text:

Japanese: %s
Romaji: %s

Please:
1. Check if the romaji accurately represents the Japanese pronunciation
2. Provide corrections if needed
3. Give a confidence score (1-10)

Respond in this format:
Accuracy: [score]/10
Corrections: [any corrections or "None if accurate"]
Notes: [brief explanation]`, original, romanized)
}

// CallLimiter gates calls to a metered external service.
type CallLimiter interface {
	// Allow reserves one call. Returns ERATELIMIT without blocking when the
	// call would violate the limit; rejected calls do not use quota.
	Allow() error

	// Remaining returns how many calls are left in the current window.
	Remaining() int
}
