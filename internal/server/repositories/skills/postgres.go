// Package skills provides the PostgreSQL-backed repository for skill listings.
package skills

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
)

// PostgresRepository implements skill storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	query :=
		`INSERT INTO skills (id, owner_id, role, name, description, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.OwnerID, skill.Role, skill.Name, skill.Description, skill.Category, skill.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return skill, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	query :=
		`SELECT id, owner_id, role, name, description, category, created_at FROM skills
		 WHERE id = $1
		 `

	skill := &models.Skill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&skill.ID, &skill.OwnerID, &skill.Role,
		&skill.Name, &skill.Description, &skill.Category, &skill.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return skill, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM skills WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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

// ListByOwner returns all listings owned by ownerID, both roles, oldest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Skill, error) {
	query :=
		`SELECT id, owner_id, role, name, description, category, created_at FROM skills
		 WHERE owner_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Role, &s.Name, &s.Description,
			&s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
