package skills

import (
	"context"

	"github.com/skillswap/skillswap/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Skill, error)
}
