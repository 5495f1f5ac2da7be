// File: internal/handlers/conversation_handler.go
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
)

type ConversationHandler struct {
	ConversationRepo conversation.ConversationRepository
}

func NewConversationHandler(repo conversation.ConversationRepository) *ConversationHandler {
	return &ConversationHandler{ConversationRepo: repo}
}

// CreateConversation handles the request to open a new doctor-patient session.
// Persistence failures deliberately answer with a generic message and no
// detail, matching the behavior the API has always had for this endpoint.
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DoctorLanguage  string  `json:"doctor_language"`
		PatientLanguage string  `json:"patient_language"`
		Title           *string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.DoctorLanguage) == "" || strings.TrimSpace(req.PatientLanguage) == "" {
		writeError(w, "doctor_language and patient_language are required", http.StatusBadRequest)
		return
	}

	created, err := h.ConversationRepo.Create(r.Context(), &domain.Conversation{
		DoctorLanguage:  req.DoctorLanguage,
		PatientLanguage: req.PatientLanguage,
		Title:           req.Title,
	})
	if err != nil {
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Re-select by generated ID so the response carries the canonical
	// database timestamp.
	stored, err := h.ConversationRepo.FindByID(r.Context(), created.ID)
	if err != nil {
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// ListConversations returns every conversation, newest first.
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.ConversationRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

// GetConversation returns a single conversation by ID.
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	conversationID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		writeError(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	stored, err := h.ConversationRepo.FindByID(r.Context(), uint(conversationID))
	if err != nil {
		if errors.Is(err, conversation.ErrConversationNotFound) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}
