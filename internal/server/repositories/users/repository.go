package users

import (
	"context"

	"github.com/skillswap/skillswap/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListExcept(ctx context.Context, excludeID string) ([]*models.User, error)
	Search(ctx context.Context, query string, excludeID string) ([]*models.User, error)
}
