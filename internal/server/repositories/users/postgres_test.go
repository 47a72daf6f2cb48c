package users

import (
	"context"
	"database/sql"
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

func TestGetByEmailSuccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("edith@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "is_admin", "created_at"}).
			AddRow("1", "edith@example.org", []byte("hash"), true, time.Now()))

	user, err := repo.GetByEmail(context.Background(), "edith@example.org")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.True(t, user.IsAdmin)
}

func TestGetByEmailNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("nobody@example.org").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.org")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateDBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(errors.New("duplicate key"))

	_, err := repo.Create(context.Background(), &models.User{Email: "dup@example.org"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestUpdatePasswordHashMissingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET password_hash = \$2 WHERE id = \$1`).
		WithArgs("missing", []byte("h")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), "missing", []byte("h"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}
