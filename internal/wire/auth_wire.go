package wire

import (
	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/api/logout", authHandler.Logout)
}
