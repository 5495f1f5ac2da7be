// File: internal/services/translation_service.go
package services

import (
    "context"
    "fmt"
    "strings"

    "github.com/iyunix/go-medbridge/internal/services/ai"
)

// Translator renders message text from one language into another. Failures
// are absorbed: implementations always return usable text, so message
// creation never fails solely because the language model is unavailable.
type Translator interface {
    Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) string
}

const (
    translateTemperature = 0.3
    translateMaxTokens   = 512
)

type TranslationService struct {
    provider ai.CompletionProvider
    logger   Logger
}

func NewTranslationService(provider ai.CompletionProvider, logger Logger) *TranslationService {
    if logger == nil {
        logger = &NoOpLogger{}
    }
    return &TranslationService{provider: provider, logger: logger}
}

// Translate issues one completion request asking for a terminology-preserving
// medical translation. Empty or whitespace-only text is returned unchanged
// without calling out; on any provider failure the original text is returned.
func (s *TranslationService) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) string {
    if strings.TrimSpace(text) == "" {
        return text
    }

    prompt := fmt.Sprintf(
        "Translate the following medical message accurately from %s to %s. "+
            "Preserve medical terminology.\n\nMessage:\n%s",
        sourceLanguage, targetLanguage, text,
    )

    translated, err := s.provider.Complete(ctx, prompt, translateTemperature, translateMaxTokens)
    if err != nil {
        // Fail safe: the caller stores the untranslated original.
        s.logger.Error("Translation failed, returning original text",
            "source", sourceLanguage, "target", targetLanguage, "error", err)
        return text
    }

    return strings.TrimSpace(translated)
}
