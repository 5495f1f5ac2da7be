// File: internal/domain/summary.go
package domain

import "time"

// Summary is a generated recap of a conversation. Summaries are append-only:
// every generation request inserts a new row.
type Summary struct {
    ID             uint      `json:"id" gorm:"primarykey"`
    ConversationID uint      `json:"conversation_id" gorm:"not null"`
    SummaryText    string    `json:"summary_text" gorm:"not null"`
    CreatedAt      time.Time `json:"created_at"`
}
