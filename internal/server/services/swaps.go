package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
	"github.com/skillswap/skillswap/internal/server/repositories/repomanager"
)

// SwapService manages the swap request ledger. Requests are created pending
// and only the stored recipient may change their status.
type SwapService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSwapService constructs a SwapService.
func NewSwapService(db *sql.DB, m repomanager.RepositoryManager) *SwapService {
	return &SwapService{db: db, repomanager: m}
}

// Create records a new swap request from requesterID to recipientID.
// The recipient id is stored as given; its existence is not validated.
func (s *SwapService) Create(ctx context.Context, requesterID, recipientID, message string) (*models.SwapRequest, error) {
	req := &models.SwapRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Message:     message,
		Status:      models.SwapRequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repomanager.SwapRequests(s.db).Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error creating swap request: %w", err)
	}
	return created, nil
}

// UpdateStatus overwrites the status of a request. It returns ErrNotFound
// when the request does not exist and ErrForbidden when callerID is not the
// recipient. The status value itself is stored unchecked; there is no
// transition table. The recipient check and the update run in one
// transaction.
func (s *SwapService) UpdateStatus(ctx context.Context, callerID, requestID, status string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.SwapRequests(tx)

		req, err := repo.GetByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return common.ErrInternal
		}
		if req.RecipientID != callerID {
			return common.ErrForbidden
		}
		if err := repo.UpdateStatus(ctx, requestID, status); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return common.ErrInternal
		}
		return nil
	})
}
