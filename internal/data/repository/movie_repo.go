package repository

import (
	"context"
	"fmt"

	"moviebuzz/internal/data/entity"
	"moviebuzz/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, genre, duration, poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.Duration,
		movie.PosterURL,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, poster_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindByTitle matches case-insensitively: the catalog treats "Heat" and
// "HEAT" as the same movie.
func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, poster_url, created_at, updated_at
		FROM movies
		WHERE LOWER(title) = LOWER($1)
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Duration,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movie by title %s: %w", title, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, genre, duration, poster_url, created_at, updated_at
		FROM movies
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Duration,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete movie %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
