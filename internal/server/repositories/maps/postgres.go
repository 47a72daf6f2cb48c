package maps

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

const mapColumns = `id, title, year, scale, description, storage_key, created_at, updated_at`

func scanMap(row interface{ Scan(...any) error }) (*models.Map, error) {
	m := &models.Map{}
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Scale, &m.Description,
		&m.StorageKey, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Map, error) {
	query := `SELECT ` + mapColumns + ` FROM maps ORDER BY year, title`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Map
	for rows.Next() {
		m, err := scanMap(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Map, error) {
	query := `SELECT ` + mapColumns + ` FROM maps WHERE id = $1`

	m, err := scanMap(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Map) (*models.Map, error) {
	query :=
		`INSERT INTO maps (title, year, scale, description, storage_key)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		m.Title, m.Year, m.Scale, m.Description, m.StorageKey).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Map) error {
	query :=
		`UPDATE maps
		 SET title = $2, year = $3, scale = $4, description = $5, storage_key = $6, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.Title, m.Year, m.Scale, m.Description, m.StorageKey)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
