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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, username, show_id, movie_title, show_date,
		                      show_time, amount_paid, ticket_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.Username,
		booking.ShowID,
		booking.MovieTitle,
		booking.ShowDate,
		booking.ShowTime,
		booking.AmountPaid,
		booking.TicketCount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("username", booking.Username),
			zap.String("show_id", booking.ShowID.String()),
		)
		return fmt.Errorf("create booking for %s: %w", booking.Username, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, username, show_id, movie_title, show_date,
		       show_time, amount_paid, ticket_count, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.Username,
		&booking.ShowID,
		&booking.MovieTitle,
		&booking.ShowDate,
		&booking.ShowTime,
		&booking.AmountPaid,
		&booking.TicketCount,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, username, show_id, movie_title, show_date,
		       show_time, amount_paid, ticket_count, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, username, show_id, movie_title, show_date,
		       show_time, amount_paid, ticket_count, status, created_at, updated_at
		FROM bookings
		WHERE show_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		r.log.Error("Failed to find bookings by show ID",
			zap.Error(err),
			zap.String("show_id", showID.String()),
		)
		return nil, fmt.Errorf("find bookings by show ID %s: %w", showID.String(), err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s status: %w", bookingID.String(), ErrNotFound)
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.Username,
			&booking.ShowID,
			&booking.MovieTitle,
			&booking.ShowDate,
			&booking.ShowTime,
			&booking.AmountPaid,
			&booking.TicketCount,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
