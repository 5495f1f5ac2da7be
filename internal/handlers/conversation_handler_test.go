// File: internal/handlers/conversation_handler_test.go
package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyunix/go-medbridge/internal/domain"
)

func TestCreateConversationRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/conversations", map[string]string{
		"doctor_language":  "en",
		"patient_language": "es",
		"title":            "Follow-up visit",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[domain.Conversation](t, rec)
	assert.Greater(t, created.ID, uint(0))
	assert.Equal(t, "en", created.DoctorLanguage)
	assert.Equal(t, "es", created.PatientLanguage)
	require.NotNil(t, created.Title)
	assert.Equal(t, "Follow-up visit", *created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	// A subsequent fetch returns identical field values.
	fetched := env.do(t, http.MethodGet, fmt.Sprintf("/conversations/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, fetched.Code)
	assert.Equal(t, created, decodeBody[domain.Conversation](t, fetched))
}

func TestCreateConversationRequiresLanguages(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]string{
		{"patient_language": "es"},
		{"doctor_language": "en"},
		{"doctor_language": "  ", "patient_language": "es"},
	} {
		rec := env.do(t, http.MethodPost, "/conversations", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGetConversationNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/conversations/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListConversationsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	first := env.createConversation(t, "en", "es")
	second := env.createConversation(t, "en", "fr")

	rec := env.do(t, http.MethodGet, "/conversations", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	listed := decodeBody[[]domain.Conversation](t, rec)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
