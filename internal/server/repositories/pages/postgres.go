package pages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

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

const pageColumns = `id, slug, title, content, meta_description, published, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.Page, error) {
	page := &models.Page{}
	var content []byte
	err := row.Scan(&page.ID, &page.Slug, &page.Title, &content,
		&page.MetaDescription, &page.Published, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(content, &page.Content); err != nil {
		return nil, fmt.Errorf("content decode error: %w", err)
	}
	return page, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages ORDER BY slug`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	query := `SELECT ` + pageColumns + ` FROM pages WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Page, error) {
	page, err := scanPage(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return page, nil
}

func (r *PostgresRepository) Create(ctx context.Context, page *models.Page) (*models.Page, error) {
	query :=
		`INSERT INTO pages (slug, title, content, meta_description, published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	content, err := json.Marshal(contentOrEmpty(page.Content))
	if err != nil {
		return nil, fmt.Errorf("content encode error: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		page.Slug, page.Title, content, page.MetaDescription, page.Published).
		Scan(&page.ID, &page.CreatedAt, &page.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *PostgresRepository) Update(ctx context.Context, page *models.Page) error {
	query :=
		`UPDATE pages
		 SET slug = $2, title = $3, content = $4, meta_description = $5, published = $6, updated_at = now()
		 WHERE id = $1
		 `

	content, err := json.Marshal(contentOrEmpty(page.Content))
	if err != nil {
		return fmt.Errorf("content encode error: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query,
		page.ID, page.Slug, page.Title, content, page.MetaDescription, page.Published)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) UpdateContent(ctx context.Context, id string, content models.PageContent, updatedAt time.Time) error {
	query :=
		`UPDATE pages SET content = $2, updated_at = $3
		 WHERE id = $1
		 `

	raw, err := json.Marshal(contentOrEmpty(content))
	if err != nil {
		return fmt.Errorf("content encode error: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, id, raw, updatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

// contentOrEmpty keeps the stored column a JSON object even for nil maps.
func contentOrEmpty(c models.PageContent) models.PageContent {
	if c == nil {
		return models.PageContent{}
	}
	return c
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
