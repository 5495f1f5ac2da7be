// File: internal/repository/conversation/conversation_repository.go

package conversation

import (
    "context"
    "errors"
    "fmt"
    "log"
    "strings"

    "github.com/iyunix/go-medbridge/internal/domain"
    "gorm.io/gorm"
)

var ErrConversationNotFound = errors.New("conversation not found")

type gormConversationRepository struct {
    db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
    return &gormConversationRepository{db: db}
}

// Create inserts a new conversation and returns it with its generated ID and
// timestamp filled in.
func (r *gormConversationRepository) Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error) {
    if err := r.validateConversationInput(conversation); err != nil {
        log.Printf("[ConversationRepository] Validation failed: %v", err)
        return nil, fmt.Errorf("validation failed: %w", err)
    }

    err := r.db.WithContext(ctx).Create(conversation).Error
    if err != nil {
        log.Printf("[ConversationRepository] Database error during conversation creation: %v", err)
        return nil, errors.New("database error creating conversation")
    }

    log.Printf("[ConversationRepository] Conversation created successfully with ID: %d", conversation.ID)
    return conversation, nil
}

// FindByID returns one conversation or ErrConversationNotFound.
func (r *gormConversationRepository) FindByID(ctx context.Context, conversationID uint) (*domain.Conversation, error) {
    if conversationID == 0 {
        return nil, errors.New("invalid conversation ID")
    }

    var conversation domain.Conversation
    err := r.db.WithContext(ctx).First(&conversation, conversationID).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrConversationNotFound
        }
        log.Printf("[ConversationRepository] Database error finding conversation ID %d: %v", conversationID, err)
        return nil, errors.New("database error fetching conversation")
    }

    return &conversation, nil
}

// FindAll returns every conversation, newest first.
func (r *gormConversationRepository) FindAll(ctx context.Context) ([]domain.Conversation, error) {
    var conversations []domain.Conversation
    err := r.db.WithContext(ctx).
        Order("created_at DESC, id DESC").
        Find(&conversations).Error

    if err != nil {
        log.Printf("[ConversationRepository] Database error listing conversations: %v", err)
        return nil, errors.New("database error fetching conversations")
    }

    return conversations, nil
}

// ExistsByID checks existence without loading the row's contents.
func (r *gormConversationRepository) ExistsByID(ctx context.Context, conversationID uint) (bool, error) {
    if conversationID == 0 {
        return false, errors.New("invalid conversation ID")
    }

    var count int64
    err := r.db.WithContext(ctx).Model(&domain.Conversation{}).Where("id = ?", conversationID).Count(&count).Error
    if err != nil {
        log.Printf("[ConversationRepository] Database error checking conversation existence for ID %d: %v", conversationID, err)
        return false, errors.New("database error checking conversation existence")
    }

    return count > 0, nil
}

func (r *gormConversationRepository) validateConversationInput(conversation *domain.Conversation) error {
    if conversation == nil {
        return errors.New("conversation cannot be nil")
    }
    if strings.TrimSpace(conversation.DoctorLanguage) == "" {
        return errors.New("doctor language is required")
    }
    if strings.TrimSpace(conversation.PatientLanguage) == "" {
        return errors.New("patient language is required")
    }
    return nil
}
