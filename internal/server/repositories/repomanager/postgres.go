package repomanager

import (
	"context"
	"database/sql"

	"github.com/dalesbridge/chronicle/internal/dbx"
	"github.com/dalesbridge/chronicle/internal/server/migrations"
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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// the embedded goose migrations.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Pages(db dbx.DBTX) pages.Repository {
	return pages.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Townships(db dbx.DBTX) townships.Repository {
	return townships.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) People(db dbx.DBTX) people.Repository {
	return people.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Buildings(db dbx.DBTX) buildings.Repository {
	return buildings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Maps(db dbx.DBTX) maps.Repository {
	return maps.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Photographs(db dbx.DBTX) photographs.Repository {
	return photographs.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Media(db dbx.DBTX) media.Repository {
	return media.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contributions(db dbx.DBTX) contributions.Repository {
	return contributions.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
