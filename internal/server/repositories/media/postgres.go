package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/dbx"
	"github.com/dalesbridge/chronicle/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const mediaColumns = `id, file_name, mime_type, size_bytes, storage_key, created_at`

func (r *PostgresRepository) List(ctx context.Context) ([]models.MediaFile, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_files ORDER BY file_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.MediaFile
	for rows.Next() {
		var f models.MediaFile
		if err := rows.Scan(&f.ID, &f.FileName, &f.MimeType, &f.SizeBytes, &f.StorageKey, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.MediaFile, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_files WHERE id = $1`

	f := &models.MediaFile{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&f.ID, &f.FileName, &f.MimeType, &f.SizeBytes, &f.StorageKey, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Create(ctx context.Context, file *models.MediaFile) (*models.MediaFile, error) {
	query :=
		`INSERT INTO media_files (file_name, mime_type, size_bytes, storage_key)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		file.FileName, file.MimeType, file.SizeBytes, file.StorageKey).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return file, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
