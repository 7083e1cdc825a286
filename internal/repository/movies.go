package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movies-dashboard/internal/domain"
)

// MoviesRepository reads and bulk-loads the movies table.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

var movieColumns = []string{"title", "year", "genre", "certificate", "rating", "votes", "duration"}

const selectMovies = `
    SELECT title, year, genre, certificate, rating, votes, duration
    FROM movies
    ORDER BY id
`

// All returns every stored row in insertion order.
func (r *MoviesRepository) All(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.pool.Query(ctx, selectMovies)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
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

// Count returns the number of stored rows.
func (r *MoviesRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// Import appends movies with COPY and returns the number of rows written.
func (r *MoviesRepository) Import(ctx context.Context, movies []domain.Movie) (int64, error) {
	n, err := r.pool.CopyFrom(ctx, pgx.Identifier{"movies"}, movieColumns, copySource(movies))
	if err != nil {
		return 0, fmt.Errorf("copy movies: %w", err)
	}
	return n, nil
}

// Replace swaps the stored table for movies in a single transaction.
func (r *MoviesRepository) Replace(ctx context.Context, movies []domain.Movie) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE movies RESTART IDENTITY`); err != nil {
		return 0, fmt.Errorf("truncate movies: %w", err)
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"movies"}, movieColumns, copySource(movies))
	if err != nil {
		return 0, fmt.Errorf("copy movies: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit replace: %w", err)
	}
	return n, nil
}

func copySource(movies []domain.Movie) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(movies), func(i int) ([]any, error) {
		m := movies[i]
		return []any{m.Title, m.Year, m.Genre, m.Certificate, m.Rating, m.Votes, m.Duration}, nil
	})
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.Title,
		&movie.Year,
		&movie.Genre,
		&movie.Certificate,
		&movie.Rating,
		&movie.Votes,
		&movie.Duration,
	)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("scan movie: %w", err)
	}
	return movie, nil
}
