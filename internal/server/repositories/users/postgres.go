// Package users provides the PostgreSQL-backed repository for user accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
)

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a new user. Username and email uniqueness is enforced by
// store constraints; violations map to ErrUsernameTaken / ErrEmailTaken.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, username, email, password_hash, bio, rating, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Bio, user.Rating, user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return nil, common.ErrEmailTaken
			case "users_username_key":
				return nil, common.ErrUsernameTaken
			}
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, bio, rating, created_at FROM users
		 WHERE id = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, bio, rating, created_at FROM users
		 WHERE email = $1
		 `
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// ListExcept returns every user except excludeID, in store order.
func (r *PostgresRepository) ListExcept(ctx context.Context, excludeID string) ([]*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, bio, rating, created_at FROM users
		 WHERE id <> $1
		 `
	rows, err := r.db.QueryContext(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.scanAll(rows)
}

// Search returns users whose username or bio contains query
// (case-insensitive substring match), excluding excludeID. An empty query
// matches everyone.
func (r *PostgresRepository) Search(ctx context.Context, query string, excludeID string) ([]*models.User, error) {
	q :=
		`SELECT id, username, email, password_hash, bio, rating, created_at FROM users
		 WHERE (username ILIKE '%' || $1 || '%' OR bio ILIKE '%' || $1 || '%') AND id <> $2
		 `
	rows, err := r.db.QueryContext(ctx, q, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r.scanAll(rows)
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Bio, &user.Rating, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) scanAll(rows *sql.Rows) ([]*models.User, error) {
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.Bio, &u.Rating, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
