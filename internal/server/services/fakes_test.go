package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/models"
	messagesrepo "github.com/skillswap/skillswap/internal/server/repositories/messages"
	"github.com/skillswap/skillswap/internal/server/repositories/repomanager"
	skillsrepo "github.com/skillswap/skillswap/internal/server/repositories/skills"
	swapsrepo "github.com/skillswap/skillswap/internal/server/repositories/swaprequests"
	usersrepo "github.com/skillswap/skillswap/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmail    *models.User
	byEmailErr error

	byID    *models.User
	byIDErr error

	listOut []*models.User
	listErr error

	searchOut  []*models.User
	searchErr  error
	gotQuery   string
	gotExclude string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) ListExcept(ctx context.Context, excludeID string) ([]*models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeUsersRepo) Search(ctx context.Context, query, excludeID string) ([]*models.User, error) {
	f.gotQuery = query
	f.gotExclude = excludeID
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchOut, nil
}

type fakeSkillsRepo struct {
	created   *models.Skill
	createErr error

	getOut *models.Skill
	getErr error

	deleted string
	delErr  error

	byOwner map[string][]*models.Skill
	listErr error
}

func (f *fakeSkillsRepo) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = s
	return s, nil
}

func (f *fakeSkillsRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeSkillsRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = id
	return nil
}

func (f *fakeSkillsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Skill, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byOwner[ownerID], nil
}

type fakeSwapsRepo struct {
	created   *models.SwapRequest
	createErr error

	getOut *models.SwapRequest
	getErr error

	updatedID     string
	updatedStatus string
	updateErr     error
}

func (f *fakeSwapsRepo) Create(ctx context.Context, r *models.SwapRequest) (*models.SwapRequest, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = r
	return r, nil
}

func (f *fakeSwapsRepo) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeSwapsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeMessagesRepo struct {
	created   *models.Message
	createErr error

	convOut []*models.Message
	convErr error
	gotA    string
	gotB    string
}

func (f *fakeMessagesRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = m
	return m, nil
}

func (f *fakeMessagesRepo) Conversation(ctx context.Context, a, b string) ([]*models.Message, error) {
	f.gotA, f.gotB = a, b
	if f.convErr != nil {
		return nil, f.convErr
	}
	return f.convOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSkillsRepo
	w *fakeSwapsRepo
	m *fakeMessagesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository        { return m.u }
func (m *fakeRepoManager) Skills(db dbx.DBTX) skillsrepo.Repository      { return m.s }
func (m *fakeRepoManager) SwapRequests(db dbx.DBTX) swapsrepo.Repository { return m.w }
func (m *fakeRepoManager) Messages(db dbx.DBTX) messagesrepo.Repository  { return m.m }

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
