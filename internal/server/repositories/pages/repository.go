// Package pages persists the editable pages of the site.
package pages

import (
	"context"
	"time"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Page, error)
	GetByID(ctx context.Context, id string) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, page *models.Page) (*models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	// UpdateContent replaces the whole content map of one page and bumps
	// updated_at. Last write wins; there is no version check.
	UpdateContent(ctx context.Context, id string, content models.PageContent, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
