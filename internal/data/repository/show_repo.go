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

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error)
	FindAll(ctx context.Context) ([]*entity.Show, error)
	FindActiveByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, movie_id, movie_title, show_date, show_time, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.MovieID,
		show.MovieTitle,
		show.ShowDate,
		show.ShowTime,
		show.Price,
		show.Status,
		show.CreatedAt,
		show.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("movie_title", show.MovieTitle),
			zap.String("show_date", show.ShowDate),
		)
		return fmt.Errorf("create show for %s: %w", show.MovieTitle, err)
	}

	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	query := `
		SELECT id, movie_id, movie_title, show_date, show_time, price, status, created_at, updated_at
		FROM shows
		WHERE id = $1
	`

	var show entity.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.MovieTitle,
		&show.ShowDate,
		&show.ShowTime,
		&show.Price,
		&show.Status,
		&show.CreatedAt,
		&show.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find show by ID",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return nil, fmt.Errorf("find show by ID %s: %w", id.String(), err)
	}

	return &show, nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.Show, error) {
	query := `
		SELECT id, movie_id, movie_title, show_date, show_time, price, status, created_at, updated_at
		FROM shows
		ORDER BY movie_title, show_date, show_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find shows", zap.Error(err))
		return nil, fmt.Errorf("find all shows: %w", err)
	}
	defer rows.Close()

	return scanShows(rows)
}

func (r *showRepository) FindActiveByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error) {
	query := `
		SELECT id, movie_id, movie_title, show_date, show_time, price, status, created_at, updated_at
		FROM shows
		WHERE movie_id = $1 AND status = 'Active'
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find active shows by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find active shows for movie %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanShows(rows)
}

// Cancel flips the show to Cancelled. The WHERE clause only matches Active
// rows, so the transition happens exactly once: a second attempt reports
// ErrAlreadyCancelled without writing, and a missing show reports ErrNotFound.
func (r *showRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE shows SET status = 'Cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'Active'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel show",
			zap.Error(err),
			zap.String("show_id", id.String()),
		)
		return fmt.Errorf("cancel show %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shows WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("cancel show %s: %w", id.String(), err)
		}
		if !exists {
			return fmt.Errorf("cancel show %s: %w", id.String(), ErrNotFound)
		}
		return fmt.Errorf("cancel show %s: %w", id.String(), ErrAlreadyCancelled)
	}

	return nil
}

func scanShows(rows pgx.Rows) ([]*entity.Show, error) {
	var shows []*entity.Show
	for rows.Next() {
		var show entity.Show
		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.MovieTitle,
			&show.ShowDate,
			&show.ShowTime,
			&show.Price,
			&show.Status,
			&show.CreatedAt,
			&show.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	return shows, nil
}
