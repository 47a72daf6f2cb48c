// Package photographs persists archive images and their storage keys.
package photographs

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Photograph, error)
	GetByID(ctx context.Context, id string) (*models.Photograph, error)
	Create(ctx context.Context, photo *models.Photograph) (*models.Photograph, error)
	Update(ctx context.Context, photo *models.Photograph) error
	Delete(ctx context.Context, id string) error
}
