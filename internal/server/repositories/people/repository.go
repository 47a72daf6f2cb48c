// Package people persists the genealogical records of the archive.
package people

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Person, error)
	GetByID(ctx context.Context, id string) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id string) error
}
