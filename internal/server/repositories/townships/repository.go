// Package townships persists the township pages of the parish.
package townships

import (
	"context"
	"time"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Township, error)
	GetByID(ctx context.Context, id string) (*models.Township, error)
	GetBySlug(ctx context.Context, slug string) (*models.Township, error)
	Create(ctx context.Context, township *models.Township) (*models.Township, error)
	Update(ctx context.Context, township *models.Township) error
	// UpdateCards replaces the card list of one township and bumps
	// updated_at. Last write wins; there is no version check.
	UpdateCards(ctx context.Context, id string, cards []models.TownshipCard, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
