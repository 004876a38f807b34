package usecase

import (
	"context"
	"fmt"

	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/dto/response"
	"moviebuzz/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetBalance(ctx context.Context, userID string) (*response.BalanceResponse, error)
	Recharge(ctx context.Context, userID string, req *request.RechargeRequest) (*response.BalanceResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetBalance(ctx context.Context, userID string) (*response.BalanceResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, repository.ErrNotFound)
	}

	return &response.BalanceResponse{
		Username: user.Username,
		Balance:  user.Balance,
	}, nil
}

// Recharge tops up the wallet with an atomic increment, then reads back the
// resulting balance.
func (s *userService) Recharge(ctx context.Context, userID string, req *request.RechargeRequest) (*response.BalanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Recharge validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.users.CreditBalance(ctx, id, req.Amount); err != nil {
		s.log.Error("Failed to recharge balance",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int64("amount", req.Amount),
		)
		return nil, fmt.Errorf("recharge: %w", err)
	}

	s.log.Info("Balance recharged",
		zap.String("user_id", userID),
		zap.Int64("amount", req.Amount),
	)

	return s.GetBalance(ctx, userID)
}
