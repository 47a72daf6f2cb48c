// Package events persists the village timeline.
package events

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}
