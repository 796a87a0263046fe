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

// SkillService manages skill listings. Every mutation is scoped to the
// calling user: a skill can only be deleted by its owner.
type SkillService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSkillService constructs a SkillService.
func NewSkillService(db *sql.DB, m repomanager.RepositoryManager) *SkillService {
	return &SkillService{db: db, repomanager: m}
}

// Add creates a skill listing owned by ownerID. The role is fixed at
// creation and selects whether the listing is offered or sought.
func (s *SkillService) Add(ctx context.Context, ownerID, name, description, category string, role models.SkillRole) (*models.Skill, error) {
	skill := &models.Skill{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Role:        role,
		Name:        name,
		Description: description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repomanager.Skills(s.db).Create(ctx, skill)
	if err != nil {
		return nil, fmt.Errorf("error creating skill: %w", err)
	}
	return created, nil
}

// Delete removes the skill with the given id. It returns ErrNotFound when
// the skill does not exist and ErrForbidden when callerID is not the owner.
// The ownership check and the delete run in one transaction.
func (s *SkillService) Delete(ctx context.Context, callerID, skillID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Skills(tx)

		skill, err := repo.GetByID(ctx, skillID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return common.ErrInternal
		}
		if skill.OwnerID != callerID {
			return common.ErrForbidden
		}
		if err := repo.Delete(ctx, skillID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return common.ErrInternal
		}
		return nil
	})
}
