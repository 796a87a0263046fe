// Package services contains the server-side business rules. This file
// implements UserService: registration, login, profile assembly, browsing
// and search.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/server/auth"
	"github.com/skillswap/skillswap/internal/server/config"
	"github.com/skillswap/skillswap/internal/server/models"
	"github.com/skillswap/skillswap/internal/server/repositories/repomanager"
)

// UserProfile is a user annotated with the names of their skill listings,
// split by role.
type UserProfile struct {
	User        *models.User
	SkillsTeach []string
	SkillsLearn []string
}

// UserService provides identity and profile operations:
//   - Register: create a user and issue a session token
//   - Login: verify credentials and issue a session token
//   - Profile / ListOthers / Search: profile views annotated with skills
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	secretKey   []byte
	sessionTTL  time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		secretKey:   []byte(cfg.SecretKey),
		sessionTTL:  cfg.SessionTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// stored user together with a freshly minted session token, so the caller is
// authenticated immediately after registration. Duplicate email or username
// surfaces as common.ErrEmailTaken / common.ErrUsernameTaken: uniqueness is
// enforced by store constraints, not a check-then-insert.
func (s *UserService) Register(ctx context.Context, username, email, password, bio string) (*models.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Bio:          bio,
		Rating:       models.DefaultRating,
		CreatedAt:    time.Now().UTC(),
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrUsernameTaken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.newSessionToken(u.ID)
	if err != nil {
		return nil, "", common.ErrInternal
	}
	return u, token, nil
}

// Login verifies the email/password pair and, on success, returns the user
// and a new session token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", common.ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", common.ErrUnauthorized
	}

	token, err := s.newSessionToken(user.ID)
	if err != nil {
		return nil, "", common.ErrInternal
	}
	return user, token, nil
}

// Profile assembles the user's own profile with all their skill listings.
func (s *UserService) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return s.annotate(ctx, user)
}

// ListOthers returns every user except the caller, each annotated with
// their skill listings. No ordering beyond store order.
func (s *UserService) ListOthers(ctx context.Context, callerID string) ([]*UserProfile, error) {
	users, err := s.repomanager.Users(s.db).ListExcept(ctx, callerID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return s.annotateAll(ctx, users)
}

// Search returns users whose username or bio contains query
// (case-insensitive), excluding the caller. An empty query matches everyone.
func (s *UserService) Search(ctx context.Context, callerID, query string) ([]*UserProfile, error) {
	users, err := s.repomanager.Users(s.db).Search(ctx, query, callerID)
	if err != nil {
		return nil, common.ErrInternal
	}
	return s.annotateAll(ctx, users)
}

func (s *UserService) newSessionToken(userID string) (string, error) {
	return auth.NewSessionToken(userID, s.secretKey, s.sessionTTL)
}

func (s *UserService) annotate(ctx context.Context, user *models.User) (*UserProfile, error) {
	listings, err := s.repomanager.Skills(s.db).ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	p := &UserProfile{User: user, SkillsTeach: []string{}, SkillsLearn: []string{}}
	for _, skill := range listings {
		switch skill.Role {
		case models.SkillRoleTeach:
			p.SkillsTeach = append(p.SkillsTeach, skill.Name)
		case models.SkillRoleLearn:
			p.SkillsLearn = append(p.SkillsLearn, skill.Name)
		}
	}
	return p, nil
}

func (s *UserService) annotateAll(ctx context.Context, users []*models.User) ([]*UserProfile, error) {
	result := make([]*UserProfile, 0, len(users))
	for _, u := range users {
		p, err := s.annotate(ctx, u)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
