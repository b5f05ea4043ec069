package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Zemfira-B/RabotaWeb/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

// MovieParams bundles the client-supplied fields of a movie.
type MovieParams struct {
	Name        string
	Description string
	Popularity  int32
}

// List returns every movie row in the table's natural order.
func (r *MoviesRepository) List(ctx context.Context) ([]domain.Movie, error) {
	const query = `SELECT id, name, description, popularity FROM movies`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	const query = `SELECT id, name, description, popularity FROM movies WHERE id = $1`

	movie, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}
	return movie, nil
}

// Create inserts a new movie row and returns the entity with its generated id.
func (r *MoviesRepository) Create(ctx context.Context, params MovieParams) (domain.Movie, error) {
	const query = `
        INSERT INTO movies (name, description, popularity)
        VALUES ($1,$2,$3)
        RETURNING id
    `

	var id int64
	if err := r.pool.QueryRow(ctx, query, params.Name, params.Description, params.Popularity).Scan(&id); err != nil {
		return domain.Movie{}, err
	}

	return domain.Movie{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Popularity:  params.Popularity,
	}, nil
}

// Update overwrites every client-supplied field of the movie with the given id.
func (r *MoviesRepository) Update(ctx context.Context, id int64, params MovieParams) error {
	const query = `UPDATE movies SET name = $1, description = $2, popularity = $3 WHERE id = $4`

	tag, err := r.pool.Exec(ctx, query, params.Name, params.Description, params.Popularity, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the movie with the given id.
func (r *MoviesRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM movies WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	if err := row.Scan(&movie.ID, &movie.Name, &movie.Description, &movie.Popularity); err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
