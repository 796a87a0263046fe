package repomanager

import (
	"context"
	"database/sql"

	"github.com/skillswap/skillswap/internal/dbx"
	"github.com/skillswap/skillswap/internal/server/repositories/messages"
	"github.com/skillswap/skillswap/internal/server/repositories/skills"
	"github.com/skillswap/skillswap/internal/server/repositories/swaprequests"
	"github.com/skillswap/skillswap/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Skills(db dbx.DBTX) skills.Repository
	SwapRequests(db dbx.DBTX) swaprequests.Repository
	Messages(db dbx.DBTX) messages.Repository
}
