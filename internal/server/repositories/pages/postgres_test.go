package pages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func pageRows(t *testing.T, content models.PageContent) *sqlmock.Rows {
	t.Helper()
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "slug", "title", "content", "meta_description", "published", "created_at", "updated_at",
	}).AddRow("1", "home", "Home", raw, "desc", true, now, now)
}

func TestGetBySlugSuccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	content := models.PageContent{"heroTitle": json.RawMessage(`{"type":"doc"}`)}
	mock.ExpectQuery(`SELECT .* FROM pages WHERE slug = \$1`).
		WithArgs("home").
		WillReturnRows(pageRows(t, content))

	page, err := repo.GetBySlug(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "home", page.Slug)
	assert.JSONEq(t, `{"type":"doc"}`, string(page.Content["heroTitle"]))
}

func TestGetBySlugNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM pages WHERE slug = \$1`).
		WithArgs("nonexistent-slug").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBySlug(context.Background(), "nonexistent-slug")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetBySlugDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM pages WHERE slug = \$1`).
		WithArgs("home").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetBySlug(context.Background(), "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUpdateContent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`UPDATE pages SET content = \$2, updated_at = \$3`).
		WithArgs("1", []byte(`{"intro":"x"}`), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	content := models.PageContent{"intro": json.RawMessage(`"x"`)}
	err := repo.UpdateContent(context.Background(), "1", content, now)
	assert.NoError(t, err)
}

func TestUpdateContentMissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE pages SET content = \$2, updated_at = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContent(context.Background(), "missing", nil, time.Now())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateReturnsGeneratedFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO pages`).
		WithArgs("history", "History", []byte(`{}`), "", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("42", now, now))

	page, err := repo.Create(context.Background(), &models.Page{Slug: "history", Title: "History"})
	require.NoError(t, err)
	assert.Equal(t, "42", page.ID)
}

func TestDeleteMissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM pages WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
