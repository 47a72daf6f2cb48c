// Package media persists uploaded documents (scans, PDFs, transcripts).
package media

import (
	"context"

	"github.com/dalesbridge/chronicle/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.MediaFile, error)
	GetByID(ctx context.Context, id string) (*models.MediaFile, error)
	Create(ctx context.Context, file *models.MediaFile) (*models.MediaFile, error)
	Delete(ctx context.Context, id string) error
}
