// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider issues single-shot chat completion requests. Callers
// treat the provider as a best-effort dependency: every failure is reported
// through the returned error and nothing is retried here.
type CompletionProvider interface {
    Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error)
}
