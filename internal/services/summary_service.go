// File: internal/services/summary_service.go
package services

import (
    "context"
    "fmt"
    "strings"
    "unicode"

    "github.com/iyunix/go-medbridge/internal/services/ai"
)

// TranscriptEntry is one utterance handed to the summarizer, in conversation
// order. Translated text is preferred over the original when both exist.
type TranscriptEntry struct {
    Role           string
    OriginalText   string
    TranslatedText string
}

// Summarizer produces a clinical recap of a conversation. Like Translator,
// it degrades to fixed placeholder text instead of failing.
type Summarizer interface {
    Summarize(ctx context.Context, entries []TranscriptEntry) string
}

const (
    // NoDataSummary is returned when no entry carries usable text.
    NoDataSummary = "No conversation data available."
    // UnavailableSummary is returned when the language model call fails.
    UnavailableSummary = "Unable to generate summary at this time."

    summarizeTemperature = 0.4
    summarizeMaxTokens   = 600
)

type SummaryService struct {
    provider ai.CompletionProvider
    logger   Logger
}

func NewSummaryService(provider ai.CompletionProvider, logger Logger) *SummaryService {
    if logger == nil {
        logger = &NoOpLogger{}
    }
    return &SummaryService{provider: provider, logger: logger}
}

// Summarize builds a role-tagged transcript and asks the model for a
// structured clinical summary. Entries without usable text are skipped; if
// nothing remains, NoDataSummary is returned without calling out.
func (s *SummaryService) Summarize(ctx context.Context, entries []TranscriptEntry) string {
    lines := make([]string, 0, len(entries))
    for _, entry := range entries {
        text := entry.TranslatedText
        if strings.TrimSpace(text) == "" {
            text = entry.OriginalText
        }
        if strings.TrimSpace(text) == "" {
            continue
        }
        lines = append(lines, fmt.Sprintf("%s said: %s", capitalize(entry.Role), text))
    }

    if len(lines) == 0 {
        return NoDataSummary
    }

    prompt := fmt.Sprintf(
        "You are a medical assistant.\n\n"+
            "Summarize the following doctor-patient conversation.\n\n"+
            "Focus on:\n"+
            "- Symptoms\n"+
            "- Diagnoses\n"+
            "- Medications\n"+
            "- Follow-up actions\n\n"+
            "Return a concise, structured summary.\n\n"+
            "Conversation:\n%s",
        strings.Join(lines, "\n"),
    )

    summary, err := s.provider.Complete(ctx, prompt, summarizeTemperature, summarizeMaxTokens)
    if err != nil {
        s.logger.Error("Summary generation failed", "error", err)
        return UnavailableSummary
    }

    return strings.TrimSpace(summary)
}

func capitalize(s string) string {
    if s == "" {
        return s
    }
    runes := []rune(s)
    runes[0] = unicode.ToUpper(runes[0])
    return string(runes)
}
