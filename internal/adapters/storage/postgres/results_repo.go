package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pawstars-api/internal/domain/results"
)

type ResultsRepo struct {
	db *sql.DB
}

func NewResultsRepo(db *sql.DB) *ResultsRepo {
	return &ResultsRepo{db: db}
}

func (r *ResultsRepo) Create(ctx context.Context, res results.Result) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pawstars_results (
			id, kind, text,
			dog_name, owner_name,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		res.ID,
		string(res.Kind),
		res.Text,
		res.DogName,
		res.OwnerName,
		res.CreatedAt,
	)
	return err
}

func (r *ResultsRepo) GetByID(ctx context.Context, id string) (results.Result, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return results.Result{}, results.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, kind, text,
			dog_name, owner_name,
			created_at
		FROM pawstars_results
		WHERE id = $1
	`, id)

	var res results.Result
	var kind string
	if err := row.Scan(
		&res.ID,
		&kind,
		&res.Text,
		&res.DogName,
		&res.OwnerName,
		&res.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return results.Result{}, results.ErrNotFound
		}
		return results.Result{}, err
	}
	res.Kind = results.Kind(kind)
	res.CreatedAt = res.CreatedAt.UTC()

	return res, nil
}
