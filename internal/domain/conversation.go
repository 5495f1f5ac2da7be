// File: internal/domain/conversation.go
package domain

import "time"

// Conversation is a doctor-patient session container with two declared languages.
// Conversations are immutable after creation; there is no update or delete.
type Conversation struct {
    ID              uint      `json:"id" gorm:"primarykey"`
    DoctorLanguage  string    `json:"doctor_language" gorm:"not null"`
    PatientLanguage string    `json:"patient_language" gorm:"not null"`
    Title           *string   `json:"title"`
    CreatedAt       time.Time `json:"created_at"`
}
