// Package services contains server-side business logic between the HTTP API
// and the repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/server/models"
	"github.com/dalesbridge/chronicle/internal/server/repositories/repomanager"
)

// nowFunc is a seam for tests.
var nowFunc = time.Now

// PageService serves editable pages: the public read path by slug and the
// content-update path used by inline editing, plus admin CRUD.
type PageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPageService(db *sql.DB, m repomanager.RepositoryManager) *PageService {
	return &PageService{db: db, repomanager: m}
}

// GetBySlug returns the page addressed by slug. A missing row surfaces as
// common.ErrNotFound, distinct from transport failure.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return s.repomanager.Pages(s.db).GetBySlug(ctx, slug)
}

func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	return s.repomanager.Pages(s.db).List(ctx)
}

func (s *PageService) GetByID(ctx context.Context, id string) (*models.Page, error) {
	return s.repomanager.Pages(s.db).GetByID(ctx, id)
}

func (s *PageService) Create(ctx context.Context, page *models.Page) (*models.Page, error) {
	if err := validateSlug(page.Slug); err != nil {
		return nil, err
	}
	return s.repomanager.Pages(s.db).Create(ctx, page)
}

func (s *PageService) Update(ctx context.Context, page *models.Page) error {
	if err := validateSlug(page.Slug); err != nil {
		return err
	}
	return s.repomanager.Pages(s.db).Update(ctx, page)
}

// UpdateContent replaces the whole content map of one page with the value
// posted by an editor and stamps updated_at. Callers pass the full previous
// map with one field overwritten; concurrent editors overwrite each other
// (last write wins).
func (s *PageService) UpdateContent(ctx context.Context, id string, content models.PageContent) error {
	return s.repomanager.Pages(s.db).UpdateContent(ctx, id, content, nowFunc())
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Pages(s.db).Delete(ctx, id)
}

// validateSlug enforces the URL-path-segment shape of slugs.
func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug is required", common.ErrValidation)
	}
	for _, r := range slug {
		valid := r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !valid {
			return fmt.Errorf("%w: slug %q must be lowercase letters, digits and dashes", common.ErrValidation, slug)
		}
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("%w: slug %q must not start or end with a dash", common.ErrValidation, slug)
	}
	return nil
}
