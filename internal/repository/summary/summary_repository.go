// File: internal/repository/summary/summary_repository.go

package summary

import (
    "context"
    "errors"
    "log"
    "strings"

    "github.com/iyunix/go-medbridge/internal/domain"
    "gorm.io/gorm"
)

var ErrSummaryNotFound = errors.New("summary not found")

type gormSummaryRepository struct {
    db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
    return &gormSummaryRepository{db: db}
}

// Create appends a new summary row. There is no uniqueness constraint: each
// generation request adds another summary for the conversation.
func (r *gormSummaryRepository) Create(ctx context.Context, summary *domain.Summary) (*domain.Summary, error) {
    if summary == nil {
        return nil, errors.New("summary cannot be nil")
    }
    if summary.ConversationID == 0 {
        return nil, errors.New("conversation ID is required")
    }
    if strings.TrimSpace(summary.SummaryText) == "" {
        return nil, errors.New("summary text is required")
    }

    err := r.db.WithContext(ctx).Create(summary).Error
    if err != nil {
        log.Printf("[SummaryRepository] Database error during summary creation for conversation ID %d: %v", summary.ConversationID, err)
        return nil, errors.New("database error creating summary")
    }

    log.Printf("[SummaryRepository] Summary created successfully with ID: %d for conversation: %d", summary.ID, summary.ConversationID)
    return summary, nil
}

// FindByID returns one summary or ErrSummaryNotFound.
func (r *gormSummaryRepository) FindByID(ctx context.Context, summaryID uint) (*domain.Summary, error) {
    if summaryID == 0 {
        return nil, errors.New("invalid summary ID")
    }

    var summary domain.Summary
    err := r.db.WithContext(ctx).First(&summary, summaryID).Error
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrSummaryNotFound
        }
        log.Printf("[SummaryRepository] Database error finding summary ID %d: %v", summaryID, err)
        return nil, errors.New("database error fetching summary")
    }

    return &summary, nil
}

// FindByConversationID returns a conversation's summaries, newest first.
func (r *gormSummaryRepository) FindByConversationID(ctx context.Context, conversationID uint) ([]domain.Summary, error) {
    if conversationID == 0 {
        return nil, errors.New("invalid conversation ID")
    }

    var summaries []domain.Summary
    err := r.db.WithContext(ctx).
        Where("conversation_id = ?", conversationID).
        Order("created_at DESC, id DESC").
        Find(&summaries).Error

    if err != nil {
        log.Printf("[SummaryRepository] Database error finding summaries for conversation ID %d: %v", conversationID, err)
        return nil, errors.New("database error fetching summaries")
    }

    return summaries, nil
}
