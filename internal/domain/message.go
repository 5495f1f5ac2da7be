// File: internal/domain/message.go
package domain

import "time"

const (
    RoleDoctor  = "doctor"
    RolePatient = "patient"
)

// ValidRole reports whether role is one of the two allowed sender roles.
func ValidRole(role string) bool {
    return role == RoleDoctor || role == RolePatient
}

// Message is a single utterance within a conversation. TranslatedContent is
// filled once at creation time and never recomputed; AudioPath is set later
// by the audio upload flow.
type Message struct {
    ID                uint      `json:"id" gorm:"primarykey"`
    ConversationID    uint      `json:"conversation_id" gorm:"not null"`
    SenderRole        string    `json:"sender_role" gorm:"not null;check:sender_role IN ('doctor','patient')"`
    OriginalContent   *string   `json:"original_content"`
    TranslatedContent *string   `json:"translated_content"`
    AudioPath         *string   `json:"audio_path"`
    CreatedAt         time.Time `json:"created_at"`
}
