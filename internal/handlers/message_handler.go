// File: internal/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/iyunix/go-medbridge/internal/domain"
	"github.com/iyunix/go-medbridge/internal/repository/conversation"
	"github.com/iyunix/go-medbridge/internal/repository/message"
	"github.com/iyunix/go-medbridge/internal/services"
)

type MessageHandler struct {
	ConversationRepo conversation.ConversationRepository
	MessageRepo      message.MessageRepository
	Translator       services.Translator
}

func NewMessageHandler(
	conversationRepo conversation.ConversationRepository,
	messageRepo message.MessageRepository,
	translator services.Translator,
) *MessageHandler {
	return &MessageHandler{
		ConversationRepo: conversationRepo,
		MessageRepo:      messageRepo,
		Translator:       translator,
	}
}

// CreateMessage stores a new utterance. When original content is supplied
// without a translation, the translator fills it in using the conversation's
// language pair: a doctor's message translates doctor→patient language, a
// patient's message the reverse. The translated content is computed exactly
// once, here.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConversationID    uint    `json:"conversation_id"`
		SenderRole        string  `json:"sender_role"`
		OriginalContent   *string `json:"original_content"`
		TranslatedContent *string `json:"translated_content"`
		AudioPath         *string `json:"audio_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !domain.ValidRole(req.SenderRole) {
		writeError(w, "sender_role must be 'doctor' or 'patient'", http.StatusBadRequest)
		return
	}

	conv, err := h.ConversationRepo.FindByID(r.Context(), req.ConversationID)
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	translated := req.TranslatedContent
	if hasText(req.OriginalContent) && !hasText(translated) {
		sourceLanguage := conv.DoctorLanguage
		targetLanguage := conv.PatientLanguage
		if req.SenderRole == domain.RolePatient {
			sourceLanguage, targetLanguage = targetLanguage, sourceLanguage
		}
		text := h.Translator.Translate(r.Context(), *req.OriginalContent, sourceLanguage, targetLanguage)
		translated = &text
	}

	created, err := h.MessageRepo.Create(r.Context(), &domain.Message{
		ConversationID:    req.ConversationID,
		SenderRole:        req.SenderRole,
		OriginalContent:   req.OriginalContent,
		TranslatedContent: translated,
		AudioPath:         req.AudioPath,
	})
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stored, err := h.MessageRepo.FindByID(r.Context(), created.ID)
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// GetConversationMessages returns a conversation's messages in playback
// order, oldest first.
func (h *MessageHandler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conversationID, err := strconv.ParseUint(vars["conversation_id"], 10, 32)
	if err != nil {
		writeError(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	exists, err := h.ConversationRepo.ExistsByID(r.Context(), uint(conversationID))
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !exists {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}

	messages, err := h.MessageRepo.FindByConversationID(r.Context(), uint(conversationID))
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// SearchMessages matches the q parameter as a case-insensitive substring of
// either content field, optionally scoped to one conversation, newest first.
// The full result set is returned; there is no pagination.
func (h *MessageHandler) SearchMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeError(w, "q query parameter is required", http.StatusBadRequest)
		return
	}

	var conversationID *uint
	if raw := r.URL.Query().Get("conversation_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, "Invalid conversation ID", http.StatusBadRequest)
			return
		}
		id := uint(parsed)
		conversationID = &id
	}

	messages, err := h.MessageRepo.Search(r.Context(), q, conversationID)
	if err != nil {
		writeError(w, "Internal server error during search", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
