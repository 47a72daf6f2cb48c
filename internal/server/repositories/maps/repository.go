// Package maps persists historic map sheets and their blob-storage keys.
package maps

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Map, error)
	GetByID(ctx context.Context, id string) (*models.Map, error)
	Create(ctx context.Context, m *models.Map) (*models.Map, error)
	Update(ctx context.Context, m *models.Map) error
	Delete(ctx context.Context, id string) error
}
