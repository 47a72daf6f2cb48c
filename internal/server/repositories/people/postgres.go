package people

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

const personColumns = `id, surname, forenames, birth_year, death_year, residence, occupation, notes, created_at, updated_at`

func scanPerson(row interface{ Scan(...any) error }) (*models.Person, error) {
	p := &models.Person{}
	err := row.Scan(&p.ID, &p.Surname, &p.Forenames, &p.BirthYear, &p.DeathYear,
		&p.Residence, &p.Occupation, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people ORDER BY surname, forenames`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	query :=
		`INSERT INTO people (surname, forenames, birth_year, death_year, residence, occupation, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		person.Surname, person.Forenames, person.BirthYear, person.DeathYear,
		person.Residence, person.Occupation, person.Notes).
		Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return person, nil
}

func (r *PostgresRepository) Update(ctx context.Context, person *models.Person) error {
	query :=
		`UPDATE people
		 SET surname = $2, forenames = $3, birth_year = $4, death_year = $5,
		     residence = $6, occupation = $7, notes = $8, updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		person.ID, person.Surname, person.Forenames, person.BirthYear, person.DeathYear,
		person.Residence, person.Occupation, person.Notes)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
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
