// Package contributions persists visitor-submitted memories and corrections.
package contributions

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Contribution, error)
	Create(ctx context.Context, c *models.Contribution) (*models.Contribution, error)
	MarkReviewed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
