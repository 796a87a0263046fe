// Package swaprequests provides the PostgreSQL-backed repository for the
// swap request ledger.
package swaprequests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
)

// PostgresRepository implements swap request storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, req *models.SwapRequest) (*models.SwapRequest, error) {
	query :=
		`INSERT INTO swap_requests (id, requester_id, recipient_id, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.RequesterID, req.RecipientID, req.Message, req.Status, req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	query :=
		`SELECT id, requester_id, recipient_id, message, status, created_at FROM swap_requests
		 WHERE id = $1
		 `

	req := &models.SwapRequest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.RequesterID,
		&req.RecipientID, &req.Message, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return req, nil
}

// UpdateStatus overwrites the stored status unconditionally.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE swap_requests SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
