package messages

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/skillswap/skillswap/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	msg := &models.Message{
		ID:         "m-1",
		SenderID:   "u-1",
		ReceiverID: "u-2",
		Content:    "hi",
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	mock.ExpectExec(`INSERT\s+INTO\s+messages`).
		WithArgs(msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, false, msg.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), msg)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.IsRead {
		t.Fatalf("new message must not be marked read: %+v", got)
	}
}

func TestConversation_BothDirections(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t0 := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "is_read", "created_at"}).
		AddRow("m-1", "u-1", "u-2", "hi", false, t0).
		AddRow("m-2", "u-2", "u-1", "hello", false, t0.Add(time.Minute))
	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+messages\s+WHERE\s+\(sender_id\s*=\s*\$1`).
		WithArgs("u-1", "u-2").
		WillReturnRows(rows)

	got, err := repo.Conversation(context.Background(), "u-1", "u-2")
	if err != nil {
		t.Fatalf("Conversation error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m-1" || got[1].ID != "m-2" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestConversation_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+.*\s+FROM\s+messages`).
		WithArgs("u-1", "u-2").
		WillReturnError(errors.New("db err"))

	_, err := repo.Conversation(context.Background(), "u-1", "u-2")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
