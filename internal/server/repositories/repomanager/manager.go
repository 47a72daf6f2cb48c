// Package repomanager vends repository implementations for a given database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dalesbridge/chronicle/internal/dbx"
	"github.com/dalesbridge/chronicle/internal/server/repositories/buildings"
	"github.com/dalesbridge/chronicle/internal/server/repositories/contributions"
	"github.com/dalesbridge/chronicle/internal/server/repositories/events"
	"github.com/dalesbridge/chronicle/internal/server/repositories/maps"
	"github.com/dalesbridge/chronicle/internal/server/repositories/media"
	"github.com/dalesbridge/chronicle/internal/server/repositories/pages"
	"github.com/dalesbridge/chronicle/internal/server/repositories/people"
	"github.com/dalesbridge/chronicle/internal/server/repositories/photographs"
	"github.com/dalesbridge/chronicle/internal/server/repositories/townships"
	"github.com/dalesbridge/chronicle/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so services can
// use the same constructors inside and outside transactions.
type RepositoryManager interface {
	Pages(db dbx.DBTX) pages.Repository
	Townships(db dbx.DBTX) townships.Repository
	People(db dbx.DBTX) people.Repository
	Buildings(db dbx.DBTX) buildings.Repository
	Events(db dbx.DBTX) events.Repository
	Maps(db dbx.DBTX) maps.Repository
	Photographs(db dbx.DBTX) photographs.Repository
	Media(db dbx.DBTX) media.Repository
	Users(db dbx.DBTX) users.Repository
	Contributions(db dbx.DBTX) contributions.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
