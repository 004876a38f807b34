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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Balance mutations. Both are single atomic statements: concurrent
	// credits and debits against the same user never lose updates.
	CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error
	DebitBalance(ctx context.Context, id uuid.UUID, amount int64) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password, role, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Balance,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, username, password, role, balance, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Balance,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, role, balance, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Balance,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update password for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update password for user %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

// CreditBalance adds amount to the user's balance with a server-side
// increment. A missing user reports ErrNotFound and writes nothing.
func (r *userRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `UPDATE users SET balance = balance + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to credit balance",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Int64("amount", amount),
		)
		return fmt.Errorf("credit balance for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("credit balance for user %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

// DebitBalance subtracts amount from the user's balance, guarded so the
// balance can never go negative. ErrInsufficientBalance is returned when the
// guard rejects the debit.
func (r *userRepository) DebitBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `
		UPDATE users SET balance = balance - $2, updated_at = NOW()
		WHERE id = $1 AND balance >= $2
	`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to debit balance",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Int64("amount", amount),
		)
		return fmt.Errorf("debit balance for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("debit balance for user %s: %w", id.String(), ErrInsufficientBalance)
	}

	return nil
}
