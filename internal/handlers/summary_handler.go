// File: internal/handlers/summary_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/iyunix/go-medbridge/internal/domain"
	"github.com/iyunix/go-medbridge/internal/repository/conversation"
	"github.com/iyunix/go-medbridge/internal/repository/message"
	"github.com/iyunix/go-medbridge/internal/repository/summary"
	"github.com/iyunix/go-medbridge/internal/services"
)

type SummaryHandler struct {
	ConversationRepo conversation.ConversationRepository
	MessageRepo      message.MessageRepository
	SummaryRepo      summary.SummaryRepository
	Summarizer       services.Summarizer
}

func NewSummaryHandler(
	conversationRepo conversation.ConversationRepository,
	messageRepo message.MessageRepository,
	summaryRepo summary.SummaryRepository,
	summarizer services.Summarizer,
) *SummaryHandler {
	return &SummaryHandler{
		ConversationRepo: conversationRepo,
		MessageRepo:      messageRepo,
		SummaryRepo:      summaryRepo,
		Summarizer:       summarizer,
	}
}

// GenerateSummary loads the conversation's messages in order, asks the
// summarizer for a clinical recap, and appends the result as a new summary
// row. Summaries accumulate: every call adds exactly one row.
func (h *SummaryHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
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
	if len(messages) == 0 {
		writeError(w, "No messages found to summarize", http.StatusBadRequest)
		return
	}

	entries := make([]services.TranscriptEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, services.TranscriptEntry{
			Role:           m.SenderRole,
			OriginalText:   derefString(m.OriginalContent),
			TranslatedText: derefString(m.TranslatedContent),
		})
	}

	summaryText := h.Summarizer.Summarize(r.Context(), entries)

	created, err := h.SummaryRepo.Create(r.Context(), &domain.Summary{
		ConversationID: uint(conversationID),
		SummaryText:    summaryText,
	})
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	stored, err := h.SummaryRepo.FindByID(r.Context(), created.ID)
	if err != nil {
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stored)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
