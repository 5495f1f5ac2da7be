// File: internal/repository/conversation/interface.go
package conversation

import (
	"context"

	"github.com/iyunix/go-medbridge/internal/domain"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *domain.Conversation) (*domain.Conversation, error)
	FindByID(ctx context.Context, conversationID uint) (*domain.Conversation, error)
	FindAll(ctx context.Context) ([]domain.Conversation, error)
	ExistsByID(ctx context.Context, conversationID uint) (bool, error)
}
