package providers

import "context"

// TextGenerator produces prose from a prompt. Implementations are opaque
// external services; a failed call must never leave a creation row
// behind.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// TextConfig configures the text generation provider explicitly, so
// tests can construct doubles instead of relying on process-wide state.
type TextConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}
