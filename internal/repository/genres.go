package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zemfira-B/RabotaWeb/internal/domain"
)

// GenresRepository provides persistence helpers for genre entities.
type GenresRepository struct {
	pool *pgxpool.Pool
}

// GenreParams bundles the client-supplied fields of a genre.
type GenreParams struct {
	Name        string
	Description string
	Popularity  int32
}

// List returns every genre row in the table's natural order.
func (r *GenresRepository) List(ctx context.Context) ([]domain.Genre, error) {
	const query = `SELECT id, name, description, popularity FROM genres`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

// GetByID fetches a genre by its identifier.
func (r *GenresRepository) GetByID(ctx context.Context, id int64) (domain.Genre, error) {
	const query = `SELECT id, name, description, popularity FROM genres WHERE id = $1`

	genre, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Genre{}, ErrNotFound
		}
		return domain.Genre{}, err
	}
	return genre, nil
}

// Create inserts a new genre row and returns the entity with its generated id.
func (r *GenresRepository) Create(ctx context.Context, params GenreParams) (domain.Genre, error) {
	const query = `
        INSERT INTO genres (name, description, popularity)
        VALUES ($1,$2,$3)
        RETURNING id
    `

	var id int64
	if err := r.pool.QueryRow(ctx, query, params.Name, params.Description, params.Popularity).Scan(&id); err != nil {
		return domain.Genre{}, err
	}

	return domain.Genre{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Popularity:  params.Popularity,
	}, nil
}

// Update overwrites every client-supplied field of the genre with the given id.
func (r *GenresRepository) Update(ctx context.Context, id int64, params GenreParams) error {
	const query = `UPDATE genres SET name = $1, description = $2, popularity = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, params.Name, params.Description, params.Popularity, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the genre with the given id.
func (r *GenresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM genres WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanGenre(row pgx.Row) (domain.Genre, error) {
	var genre domain.Genre
	if err := row.Scan(&genre.ID, &genre.Name, &genre.Description, &genre.Popularity); err != nil {
		return domain.Genre{}, err
	}
	return genre, nil
}
