package usecase

import (
	"context"
	"fmt"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/dto/response"
	"moviebuzz/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error

	// EnsureAdminAccount creates or refreshes the admin user from the
	// configured credentials. Called once at startup.
	EnsureAdminAccount(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check username availability
	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create user with an empty wallet
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCustomer,
		Balance:      0,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 5. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// 1. Parse token
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	// 2. Revoke session
	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

// EnsureAdminAccount makes the configured admin credentials usable: it
// creates the admin user if missing, or re-hashes the password when the
// configured one no longer matches the stored hash.
func (s *authService) EnsureAdminAccount(ctx context.Context) error {
	username := s.config.Admin.Username
	password := s.config.Admin.Password
	if username == "" || password == "" {
		return fmt.Errorf("admin credentials not configured")
	}

	admin, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find admin account: %w", err)
	}

	if admin == nil {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		now := time.Now()
		admin = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:     username,
			PasswordHash: hashedPassword,
			Role:         entity.RoleAdmin,
			Balance:      0,
		}

		if err := s.repo.User.Create(ctx, admin); err != nil {
			return fmt.Errorf("create admin account: %w", err)
		}

		s.log.Info("Admin account created", zap.String("username", username))
		return nil
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		if err := s.repo.User.UpdatePassword(ctx, admin.ID, hashedPassword); err != nil {
			return fmt.Errorf("rotate admin password: %w", err)
		}

		s.log.Info("Admin password rotated", zap.String("username", username))
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
