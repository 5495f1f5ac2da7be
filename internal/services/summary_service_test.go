// File: internal/services/summary_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeBuildsRoleTaggedTranscript(t *testing.T) {
	provider := &fakeProvider{reply: "Symptoms: headache."}
	svc := NewSummaryService(provider, &NoOpLogger{})

	got := svc.Summarize(context.Background(), []TranscriptEntry{
		{Role: "doctor", OriginalText: "How are you feeling?", TranslatedText: "¿Cómo se siente?"},
		{Role: "patient", OriginalText: "Me duele la cabeza"},
	})

	assert.Equal(t, "Symptoms: headache.", got)
	// Translated text wins when present; the original fills in otherwise.
	assert.Contains(t, provider.lastPrompt, "Doctor said: ¿Cómo se siente?")
	assert.Contains(t, provider.lastPrompt, "Patient said: Me duele la cabeza")
	assert.InDelta(t, 0.4, provider.lastTemperature, 0.001)
	assert.Equal(t, 600, provider.lastMaxTokens)
}

func TestSummarizeSkipsEntriesWithoutText(t *testing.T) {
	provider := &fakeProvider{reply: "summary"}
	svc := NewSummaryService(provider, &NoOpLogger{})

	svc.Summarize(context.Background(), []TranscriptEntry{
		{Role: "doctor"},
		{Role: "patient", OriginalText: "   "},
		{Role: "patient", OriginalText: "I feel dizzy"},
	})

	assert.NotContains(t, provider.lastPrompt, "Doctor said:")
	assert.Contains(t, provider.lastPrompt, "Patient said: I feel dizzy")
}

func TestSummarizeReturnsNoDataWithoutUsableText(t *testing.T) {
	provider := &fakeProvider{reply: "should not be called"}
	svc := NewSummaryService(provider, &NoOpLogger{})

	got := svc.Summarize(context.Background(), []TranscriptEntry{
		{Role: "doctor"},
		{Role: "patient", TranslatedText: "  "},
	})

	assert.Equal(t, NoDataSummary, got)
	assert.Equal(t, 0, provider.calls)
}

func TestSummarizeReturnsPlaceholderOnFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model unavailable")}
	svc := NewSummaryService(provider, &NoOpLogger{})

	got := svc.Summarize(context.Background(), []TranscriptEntry{
		{Role: "patient", OriginalText: "I feel dizzy"},
	})

	assert.Equal(t, UnavailableSummary, got)
}
