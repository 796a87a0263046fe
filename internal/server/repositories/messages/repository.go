package messages

import (
	"context"

	"github.com/skillswap/skillswap/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	Conversation(ctx context.Context, userA, userB string) ([]*models.Message, error)
}
