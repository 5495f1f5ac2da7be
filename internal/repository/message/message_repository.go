// File: internal/repository/message/message_repository.go

package message

import (
    "context"
    "errors"
    "fmt"
    "log"

    "github.com/iyunix/go-medbridge/internal/domain"
    "gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
    db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
    return &gormMessageRepository{db: db}
}

// Create inserts a message row. Translated content, when present, is stored
// exactly as given; it is never recomputed afterwards.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
    if err := r.validateMessageInput(message); err != nil {
        log.Printf("[MessageRepository] Validation failed: %v", err)
        return nil, fmt.Errorf("validation failed: %w", err)
    }

    err := r.db.WithContext(ctx).Create(message).Error
    if err != nil {
        // Secure logging - no medical content exposed
        log.Printf("[MessageRepository] Database error during message creation for conversation ID %d: %v", message.ConversationID, err)
        return nil, errors.New("database error creating message")
    }

    log.Printf("[MessageRepository] Message created successfully with ID: %d for conversation: %d", message.ID, message.ConversationID)
    return message, nil
}

// FindByID returns one message or ErrMessageNotFound.
func (r *gormMessageRepository) FindByID(ctx context.Context, messageID uint) (*domain.Message, error) {
    if messageID == 0 {
        return nil, errors.New("invalid message ID")
    }

    var message domain.Message
    err := r.db.WithContext(ctx).First(&message, messageID).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrMessageNotFound
        }
        log.Printf("[MessageRepository] Database error finding message ID %d: %v", messageID, err)
        return nil, errors.New("database error fetching message")
    }

    return &message, nil
}

// FindByConversationID returns a conversation's messages in playback order,
// oldest first.
func (r *gormMessageRepository) FindByConversationID(ctx context.Context, conversationID uint) ([]domain.Message, error) {
    if conversationID == 0 {
        return nil, errors.New("invalid conversation ID")
    }

    var messages []domain.Message
    err := r.db.WithContext(ctx).
        Where("conversation_id = ?", conversationID).
        Order("created_at ASC, id ASC").
        Find(&messages).Error

    if err != nil {
        log.Printf("[MessageRepository] Database error finding messages for conversation ID %d: %v", conversationID, err)
        return nil, errors.New("database error fetching messages")
    }

    return messages, nil
}

// Search matches term as a case-insensitive substring of either content
// column, optionally scoped to one conversation, newest first. SQLite's LIKE
// is case-insensitive for ASCII, which is the behavior callers rely on.
func (r *gormMessageRepository) Search(ctx context.Context, term string, conversationID *uint) ([]domain.Message, error) {
    pattern := "%" + term + "%"

    query := r.db.WithContext(ctx).
        Where("original_content LIKE ? OR translated_content LIKE ?", pattern, pattern)
    if conversationID != nil {
        query = r.db.WithContext(ctx).
            Where("conversation_id = ?", *conversationID).
            Where("original_content LIKE ? OR translated_content LIKE ?", pattern, pattern)
    }

    var messages []domain.Message
    err := query.Order("created_at DESC, id DESC").Find(&messages).Error
    if err != nil {
        log.Printf("[MessageRepository] Database error searching messages: %v", err)
        return nil, errors.New("database error searching messages")
    }

    return messages, nil
}

// UpdateAudioPath sets the stored audio path for a message.
func (r *gormMessageRepository) UpdateAudioPath(ctx context.Context, messageID uint, audioPath string) error {
    if messageID == 0 {
        return errors.New("invalid message ID")
    }

    result := r.db.WithContext(ctx).
        Model(&domain.Message{}).
        Where("id = ?", messageID).
        Update("audio_path", audioPath)

    if result.Error != nil {
        log.Printf("[MessageRepository] Database error updating audio path for message ID %d: %v", messageID, result.Error)
        return errors.New("database error updating audio path")
    }

    if result.RowsAffected == 0 {
        return ErrMessageNotFound
    }

    return nil
}

// ExistsByID checks existence without loading message content.
func (r *gormMessageRepository) ExistsByID(ctx context.Context, messageID uint) (bool, error) {
    if messageID == 0 {
        return false, errors.New("invalid message ID")
    }

    var count int64
    err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("id = ?", messageID).Count(&count).Error
    if err != nil {
        log.Printf("[MessageRepository] Database error checking message existence for ID %d: %v", messageID, err)
        return false, errors.New("database error checking message existence")
    }

    return count > 0, nil
}

func (r *gormMessageRepository) validateMessageInput(message *domain.Message) error {
    if message == nil {
        return errors.New("message cannot be nil")
    }
    if message.ConversationID == 0 {
        return errors.New("conversation ID is required")
    }
    if !domain.ValidRole(message.SenderRole) {
        return fmt.Errorf("sender role must be %q or %q", domain.RoleDoctor, domain.RolePatient)
    }
    return nil
}
