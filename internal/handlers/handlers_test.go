// File: internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iyunix/go-medbridge/internal/domain"
	"github.com/iyunix/go-medbridge/internal/repository/conversation"
	"github.com/iyunix/go-medbridge/internal/repository/message"
	"github.com/iyunix/go-medbridge/internal/repository/summary"
	"github.com/iyunix/go-medbridge/internal/services"
	"github.com/iyunix/go-medbridge/internal/services/storage"
)

// fakeCompletion stands in for the language model. Tests flip err to
// simulate collaborator failure and inspect lastPrompt to verify the
// language mapping.
type fakeCompletion struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type testEnv struct {
	router           *mux.Router
	provider         *fakeCompletion
	conversationRepo conversation.ConversationRepository
	messageRepo      message.MessageRepository
	summaryRepo      summary.SummaryRepository
	audioDir         string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Conversation{}, &domain.Message{}, &domain.Summary{}))

	env := &testEnv{
		provider:         &fakeCompletion{},
		conversationRepo: conversation.NewConversationRepository(db),
		messageRepo:      message.NewMessageRepository(db),
		summaryRepo:      summary.NewSummaryRepository(db),
		audioDir:         t.TempDir(),
	}

	translator := services.NewTranslationService(env.provider, &services.NoOpLogger{})
	summarizer := services.NewSummaryService(env.provider, &services.NoOpLogger{})

	audioStorage, err := storage.NewAudioStorageService(env.audioDir, "/audio_storage")
	require.NoError(t, err)

	conversationHandler := NewConversationHandler(env.conversationRepo)
	messageHandler := NewMessageHandler(env.conversationRepo, env.messageRepo, translator)
	audioHandler := NewAudioHandler(env.messageRepo, audioStorage)
	summaryHandler := NewSummaryHandler(env.conversationRepo, env.messageRepo, env.summaryRepo, summarizer)

	r := mux.NewRouter()
	r.HandleFunc("/conversations", conversationHandler.CreateConversation).Methods("POST")
	r.HandleFunc("/conversations", conversationHandler.ListConversations).Methods("GET")
	r.HandleFunc("/conversations/{id:[0-9]+}", conversationHandler.GetConversation).Methods("GET")
	r.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	r.HandleFunc("/messages/search", messageHandler.SearchMessages).Methods("GET")
	r.HandleFunc("/messages/{conversation_id:[0-9]+}", messageHandler.GetConversationMessages).Methods("GET")
	r.HandleFunc("/audio/upload", audioHandler.UploadAudio).Methods("POST")
	r.HandleFunc("/ai/summary/{conversation_id:[0-9]+}", summaryHandler.GenerateSummary).Methods("GET")
	env.router = r

	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (env *testEnv) createConversation(t *testing.T, doctorLanguage, patientLanguage string) domain.Conversation {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/conversations", map[string]string{
		"doctor_language":  doctorLanguage,
		"patient_language": patientLanguage,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[domain.Conversation](t, rec)
}

func (env *testEnv) createMessage(t *testing.T, body map[string]interface{}) domain.Message {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/messages", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[domain.Message](t, rec)
}
