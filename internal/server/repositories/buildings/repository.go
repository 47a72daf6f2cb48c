// Package buildings persists notable structures of the parish.
package buildings

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Building, error)
	GetByID(ctx context.Context, id string) (*models.Building, error)
	Create(ctx context.Context, building *models.Building) (*models.Building, error)
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id string) error
}
