package townships

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

const townshipColumns = `id, slug, name, summary, cards, published, created_at, updated_at`

func scanTownship(row interface{ Scan(...any) error }) (*models.Township, error) {
	township := &models.Township{}
	var cards []byte
	err := row.Scan(&township.ID, &township.Slug, &township.Name, &township.Summary,
		&cards, &township.Published, &township.CreatedAt, &township.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cards, &township.Cards); err != nil {
		return nil, fmt.Errorf("cards decode error: %w", err)
	}
	return township, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Township, error) {
	query := `SELECT ` + townshipColumns + ` FROM townships ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Township
	for rows.Next() {
		township, err := scanTownship(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *township)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Township, error) {
	return r.getOne(ctx, `SELECT `+townshipColumns+` FROM townships WHERE id = $1`, id)
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Township, error) {
	return r.getOne(ctx, `SELECT `+townshipColumns+` FROM townships WHERE slug = $1`, slug)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.Township, error) {
	township, err := scanTownship(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return township, nil
}

func (r *PostgresRepository) Create(ctx context.Context, township *models.Township) (*models.Township, error) {
	query :=
		`INSERT INTO townships (slug, name, summary, cards, published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	cards, err := json.Marshal(cardsOrEmpty(township.Cards))
	if err != nil {
		return nil, fmt.Errorf("cards encode error: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query,
		township.Slug, township.Name, township.Summary, cards, township.Published).
		Scan(&township.ID, &township.CreatedAt, &township.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return township, nil
}

func (r *PostgresRepository) Update(ctx context.Context, township *models.Township) error {
	query :=
		`UPDATE townships
		 SET slug = $2, name = $3, summary = $4, cards = $5, published = $6, updated_at = now()
		 WHERE id = $1
		 `

	cards, err := json.Marshal(cardsOrEmpty(township.Cards))
	if err != nil {
		return fmt.Errorf("cards encode error: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query,
		township.ID, township.Slug, township.Name, township.Summary, cards, township.Published)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) UpdateCards(ctx context.Context, id string, cards []models.TownshipCard, updatedAt time.Time) error {
	query :=
		`UPDATE townships SET cards = $2, updated_at = $3
		 WHERE id = $1
		 `

	raw, err := json.Marshal(cardsOrEmpty(cards))
	if err != nil {
		return fmt.Errorf("cards encode error: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, id, raw, updatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM townships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func cardsOrEmpty(cards []models.TownshipCard) []models.TownshipCard {
	if cards == nil {
		return []models.TownshipCard{}
	}
	return cards
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
