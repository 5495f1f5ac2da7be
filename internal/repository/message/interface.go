// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/iyunix/go-medbridge/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, messageID uint) (*domain.Message, error)
	FindByConversationID(ctx context.Context, conversationID uint) ([]domain.Message, error)
	Search(ctx context.Context, term string, conversationID *uint) ([]domain.Message, error)
	UpdateAudioPath(ctx context.Context, messageID uint, audioPath string) error
	ExistsByID(ctx context.Context, messageID uint) (bool, error)
}
