// File: internal/handlers/audio_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/iyunix/go-medbridge/internal/repository/message"
	"github.com/iyunix/go-medbridge/internal/services/storage"
)

type AudioHandler struct {
	MessageRepo message.MessageRepository
	Storage     *storage.AudioStorageService
}

func NewAudioHandler(messageRepo message.MessageRepository, audioStorage *storage.AudioStorageService) *AudioHandler {
	return &AudioHandler{MessageRepo: messageRepo, Storage: audioStorage}
}

// UploadAudio accepts a multipart upload (file + message_id), writes the clip
// to disk, then links it to the message. The file is written before any
// check: an oversized upload is fully received and then deleted, and every
// failure after the write removes the file again so no orphan remains.
func (h *AudioHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	messageID, err := strconv.ParseUint(r.FormValue("message_id"), 10, 32)
	if err != nil {
		writeError(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	filename, err := h.Storage.Save(file, header.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			writeError(w, "File size exceeds 10MB limit", http.StatusBadRequest)
			return
		}
		writeError(w, "Failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	exists, err := h.MessageRepo.ExistsByID(r.Context(), uint(messageID))
	if err != nil {
		h.Storage.Remove(filename)
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !exists {
		h.Storage.Remove(filename)
		writeError(w, "Message not found", http.StatusNotFound)
		return
	}

	audioURL := h.Storage.PublicURL(filename)
	if err := h.MessageRepo.UpdateAudioPath(r.Context(), uint(messageID), audioURL); err != nil {
		// Compensating cleanup: never leave a stored file the database
		// does not reference.
		h.Storage.Remove(filename)
		writeError(w, "Internal server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audio_url": audioURL})
}
