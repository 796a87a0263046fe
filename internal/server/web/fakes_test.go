package web

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/skillswap/skillswap/internal/common"
	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/logging"
	"github.com/skillswap/skillswap/internal/server/auth"
	"github.com/skillswap/skillswap/internal/server/config"
	"github.com/skillswap/skillswap/internal/server/models"
	messagesrepo "github.com/skillswap/skillswap/internal/server/repositories/messages"
	"github.com/skillswap/skillswap/internal/server/repositories/repomanager"
	skillsrepo "github.com/skillswap/skillswap/internal/server/repositories/skills"
	swapsrepo "github.com/skillswap/skillswap/internal/server/repositories/swaprequests"
	usersrepo "github.com/skillswap/skillswap/internal/server/repositories/users"
	"github.com/skillswap/skillswap/internal/server/services"
)

const testSecret = "test-secret"

// memStore is an in-memory stand-in for Postgres, shared by all four
// repositories so handler tests can run full flows: register, add skills,
// message back and forth.
type memStore struct {
	mu       sync.Mutex
	users    []*models.User
	skills   []*models.Skill
	swaps    []*models.SwapRequest
	messages []*models.Message
}

type memUsersRepo struct{ st *memStore }

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, existing := range r.st.users {
		if existing.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return nil, common.ErrUsernameTaken
		}
	}
	r.st.users = append(r.st.users, u)
	return u, nil
}

func (r *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUsersRepo) ListExcept(ctx context.Context, excludeID string) ([]*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.User
	for _, u := range r.st.users {
		if u.ID != excludeID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsersRepo) Search(ctx context.Context, query, excludeID string) ([]*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	q := strings.ToLower(query)
	var out []*models.User
	for _, u := range r.st.users {
		if u.ID == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Bio), q) {
			out = append(out, u)
		}
	}
	return out, nil
}

type memSkillsRepo struct{ st *memStore }

func (r *memSkillsRepo) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.skills = append(r.st.skills, s)
	return s, nil
}

func (r *memSkillsRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memSkillsRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i, s := range r.st.skills {
		if s.ID == id {
			r.st.skills = append(r.st.skills[:i], r.st.skills[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *memSkillsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Skill, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.Skill
	for _, s := range r.st.skills {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memSwapsRepo struct{ st *memStore }

func (r *memSwapsRepo) Create(ctx context.Context, req *models.SwapRequest) (*models.SwapRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.swaps = append(r.st.swaps, req)
	return req, nil
}

func (r *memSwapsRepo) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.swaps {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memSwapsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, s := range r.st.swaps {
		if s.ID == id {
			s.Status = status
			return nil
		}
	}
	return common.ErrNotFound
}

type memMessagesRepo struct{ st *memStore }

func (r *memMessagesRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.messages = append(r.st.messages, m)
	return m, nil
}

func (r *memMessagesRepo) Conversation(ctx context.Context, a, b string) ([]*models.Message, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []*models.Message
	for _, m := range r.st.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type memRepoManager struct{ st *memStore }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return &memUsersRepo{m.st} }
func (m *memRepoManager) Skills(dbx.DBTX) skillsrepo.Repository        { return &memSkillsRepo{m.st} }
func (m *memRepoManager) SwapRequests(dbx.DBTX) swapsrepo.Repository   { return &memSwapsRepo{m.st} }
func (m *memRepoManager) Messages(dbx.DBTX) messagesrepo.Repository    { return &memMessagesRepo{m.st} }

var _ repomanager.RepositoryManager = (*memRepoManager)(nil)

// newTestServer builds a Server over the in-memory store. The sqlmock
// handle only matters for operations that open a transaction; tests for
// those set Begin/Commit/Rollback expectations themselves.
func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, *memStore) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st := &memStore{}
	m := &memRepoManager{st: st}

	cfg := &config.Config{SecretKey: testSecret, SessionTTL: time.Hour}
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv, err := NewServer(
		"127.0.0.1:0",
		l,
		services.NewUserService(db, m, cfg),
		services.NewSkillService(db, m),
		services.NewSwapService(db, m),
		services.NewMessageService(db, m),
		cfg.SecretKey,
		cfg.SessionTTL,
	)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return srv, mock, st
}

func sessionCookie(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	token, err := auth.NewSessionToken(userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func doRequest(t *testing.T, srv *Server, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}
