package contributions

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Contribution, error) {
	query := `SELECT id, name, email, subject, body, reviewed, submitted_at
		 FROM contributions ORDER BY submitted_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Contribution
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Body, &c.Reviewed, &c.SubmittedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Contribution) (*models.Contribution, error) {
	query :=
		`INSERT INTO contributions (name, email, subject, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, submitted_at
		 `

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Subject, c.Body).
		Scan(&c.ID, &c.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) MarkReviewed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contributions SET reviewed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contributions WHERE id = $1`, id)
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
