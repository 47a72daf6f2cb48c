package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/blob"
	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
)

// PhotographService manages archive images: their rows and their blobs.
type PhotographService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     blob.Storage
}

func NewPhotographService(db *sql.DB, m repomanager.RepositoryManager, storage blob.Storage) *PhotographService {
	return &PhotographService{db: db, repomanager: m, storage: storage}
}

func (s *PhotographService) List(ctx context.Context) ([]models.Photograph, error) {
	return s.repomanager.Photographs(s.db).List(ctx)
}

func (s *PhotographService) GetByID(ctx context.Context, id string) (*models.Photograph, error) {
	return s.repomanager.Photographs(s.db).GetByID(ctx, id)
}

// Upload stores the image blob first and only then inserts the row, so a
// failed insert leaves no dangling database reference. The uploaded blob is
// removed again on insert failure.
func (s *PhotographService) Upload(ctx context.Context, photo *models.Photograph, body io.Reader, contentType string) (*models.Photograph, error) {
	if photo.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	key := blob.RandomKey("photographs")
	if err := s.storage.Upload(ctx, key, body, contentType); err != nil {
		return nil, err
	}

	photo.StorageKey = key
	created, err := s.repomanager.Photographs(s.db).Create(ctx, photo)
	if err != nil {
		_ = s.storage.Remove(ctx, []string{key})
		return nil, err
	}
	return created, nil
}

func (s *PhotographService) Update(ctx context.Context, photo *models.Photograph) error {
	if photo.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Photographs(s.db).Update(ctx, photo)
}

// Delete removes the row and then the blob. A blob-removal failure after
// the row is gone is logged by the caller but not treated as fatal.
func (s *PhotographService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Photographs(s.db)

	photo, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.storage.Remove(ctx, []string{photo.StorageKey})
}

// PublicURL resolves the serving address of a stored photograph.
func (s *PhotographService) PublicURL(photo *models.Photograph) string {
	return s.storage.PublicURL(photo.StorageKey)
}

// MapService manages historic map sheets: their rows and their blobs.
type MapService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     blob.Storage
}

func NewMapService(db *sql.DB, m repomanager.RepositoryManager, storage blob.Storage) *MapService {
	return &MapService{db: db, repomanager: m, storage: storage}
}

func (s *MapService) List(ctx context.Context) ([]models.Map, error) {
	return s.repomanager.Maps(s.db).List(ctx)
}

func (s *MapService) GetByID(ctx context.Context, id string) (*models.Map, error) {
	return s.repomanager.Maps(s.db).GetByID(ctx, id)
}

func (s *MapService) Upload(ctx context.Context, m *models.Map, body io.Reader, contentType string) (*models.Map, error) {
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	key := blob.RandomKey("maps")
	if err := s.storage.Upload(ctx, key, body, contentType); err != nil {
		return nil, err
	}

	m.StorageKey = key
	created, err := s.repomanager.Maps(s.db).Create(ctx, m)
	if err != nil {
		_ = s.storage.Remove(ctx, []string{key})
		return nil, err
	}
	return created, nil
}

func (s *MapService) Update(ctx context.Context, m *models.Map) error {
	if m.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Maps(s.db).Update(ctx, m)
}

func (s *MapService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Maps(s.db)

	m, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.storage.Remove(ctx, []string{m.StorageKey})
}

func (s *MapService) PublicURL(m *models.Map) string {
	return s.storage.PublicURL(m.StorageKey)
}

// MediaService manages uploaded documents the same way.
type MediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     blob.Storage
}

func NewMediaService(db *sql.DB, m repomanager.RepositoryManager, storage blob.Storage) *MediaService {
	return &MediaService{db: db, repomanager: m, storage: storage}
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaFile, error) {
	return s.repomanager.Media(s.db).List(ctx)
}

func (s *MediaService) Upload(ctx context.Context, file *models.MediaFile, body io.Reader) (*models.MediaFile, error) {
	if file.FileName == "" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrValidation)
	}

	key := blob.RandomKey("media")
	if err := s.storage.Upload(ctx, key, body, file.MimeType); err != nil {
		return nil, err
	}

	file.StorageKey = key
	created, err := s.repomanager.Media(s.db).Create(ctx, file)
	if err != nil {
		_ = s.storage.Remove(ctx, []string{key})
		return nil, err
	}
	return created, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Media(s.db)

	file, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.storage.Remove(ctx, []string{file.StorageKey})
}

func (s *MediaService) PublicURL(file *models.MediaFile) string {
	return s.storage.PublicURL(file.StorageKey)
}
