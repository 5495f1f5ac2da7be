// File: internal/repository/summary/interface.go
package summary

import (
	"context"

	"github.com/iyunix/go-medbridge/internal/domain"
)

type SummaryRepository interface {
	Create(ctx context.Context, summary *domain.Summary) (*domain.Summary, error)
	FindByID(ctx context.Context, summaryID uint) (*domain.Summary, error)
	FindByConversationID(ctx context.Context, conversationID uint) ([]domain.Summary, error)
}
