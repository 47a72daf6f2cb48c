package services

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/dalesbridge/chronicle/internal/dbx"
	"github.com/dalesbridge/chronicle/internal/server/models"
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

// fakeRepoManager returns the injected fakes regardless of the DBTX handle.
type fakeRepoManager struct {
	pages         pages.Repository
	townships     townships.Repository
	people        people.Repository
	buildings     buildings.Repository
	events        events.Repository
	maps          maps.Repository
	photographs   photographs.Repository
	media         media.Repository
	users         users.Repository
	contributions contributions.Repository
}

func (m *fakeRepoManager) Pages(dbx.DBTX) pages.Repository                 { return m.pages }
func (m *fakeRepoManager) Townships(dbx.DBTX) townships.Repository         { return m.townships }
func (m *fakeRepoManager) People(dbx.DBTX) people.Repository               { return m.people }
func (m *fakeRepoManager) Buildings(dbx.DBTX) buildings.Repository         { return m.buildings }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository               { return m.events }
func (m *fakeRepoManager) Maps(dbx.DBTX) maps.Repository                   { return m.maps }
func (m *fakeRepoManager) Photographs(dbx.DBTX) photographs.Repository     { return m.photographs }
func (m *fakeRepoManager) Media(dbx.DBTX) media.Repository                 { return m.media }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) Contributions(dbx.DBTX) contributions.Repository { return m.contributions }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

type fakePagesRepo struct {
	page *models.Page
	err  error

	updatedID      string
	updatedContent models.PageContent
	updatedAt      time.Time
}

func (f *fakePagesRepo) List(context.Context) ([]models.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.Page{*f.page}, nil
}

func (f *fakePagesRepo) GetByID(context.Context, string) (*models.Page, error) {
	return f.page, f.err
}

func (f *fakePagesRepo) GetBySlug(context.Context, string) (*models.Page, error) {
	return f.page, f.err
}

func (f *fakePagesRepo) Create(_ context.Context, p *models.Page) (*models.Page, error) {
	return p, f.err
}

func (f *fakePagesRepo) Update(context.Context, *models.Page) error { return f.err }

func (f *fakePagesRepo) UpdateContent(_ context.Context, id string, content models.PageContent, updatedAt time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.updatedID = id
	f.updatedContent = content
	f.updatedAt = updatedAt
	return nil
}

func (f *fakePagesRepo) Delete(context.Context, string) error { return f.err }

type fakeUsersRepo struct {
	byEmail *models.User
	byID    *models.User
	err     error

	created     *models.User
	createErr   error
	updatedHash []byte
	deletedID   string
}

func (f *fakeUsersRepo) List(context.Context) ([]models.User, error) { return nil, f.err }

func (f *fakeUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	if f.byID == nil && f.err == nil {
		return nil, f.err
	}
	return f.byID, f.err
}

func (f *fakeUsersRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return f.byEmail, f.err
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	u.ID = "new-id"
	return u, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id string, hash []byte) error {
	f.updatedHash = hash
	return f.err
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakePhotoRepo struct {
	photo *models.Photograph
	err   error

	created   *models.Photograph
	createErr error
	deletedID string
}

func (f *fakePhotoRepo) List(context.Context) ([]models.Photograph, error) { return nil, f.err }

func (f *fakePhotoRepo) GetByID(context.Context, string) (*models.Photograph, error) {
	return f.photo, f.err
}

func (f *fakePhotoRepo) Create(_ context.Context, p *models.Photograph) (*models.Photograph, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = p
	return p, nil
}

func (f *fakePhotoRepo) Update(context.Context, *models.Photograph) error { return f.err }

func (f *fakePhotoRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakeBlobStorage struct {
	uploadedKeys []string
	uploadErr    error
	removedKeys  []string
	removeErr    error
}

func (f *fakeBlobStorage) Upload(_ context.Context, key string, _ io.Reader, _ string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploadedKeys = append(f.uploadedKeys, key)
	return nil
}

func (f *fakeBlobStorage) PublicURL(key string) string {
	return "https://blobs.example/" + key
}

func (f *fakeBlobStorage) Remove(_ context.Context, keys []string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedKeys = append(f.removedKeys, keys...)
	return nil
}
