package buildings

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

const buildingColumns = `id, name, building_type, grid_reference, built_year, listed_grade, description, created_at, updated_at`

func scanBuilding(row interface{ Scan(...any) error }) (*models.Building, error) {
	b := &models.Building{}
	err := row.Scan(&b.ID, &b.Name, &b.BuildingType, &b.GridReference, &b.BuiltYear,
		&b.ListedGrade, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`

	b, err := scanBuilding(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, building *models.Building) (*models.Building, error) {
	query :=
		`INSERT INTO buildings (name, building_type, grid_reference, built_year, listed_grade, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		building.Name, building.BuildingType, building.GridReference,
		building.BuiltYear, building.ListedGrade, building.Description).
		Scan(&building.ID, &building.CreatedAt, &building.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return building, nil
}

func (r *PostgresRepository) Update(ctx context.Context, building *models.Building) error {
	query :=
		`UPDATE buildings
		 SET name = $2, building_type = $3, grid_reference = $4, built_year = $5,
		     listed_grade = $6, description = $7, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		building.ID, building.Name, building.BuildingType, building.GridReference,
		building.BuiltYear, building.ListedGrade, building.Description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = $1`, id)
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
