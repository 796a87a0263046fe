package swaprequests

import (
	"context"

	"github.com/skillswap/skillswap/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, req *models.SwapRequest) (*models.SwapRequest, error)
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
