package wire

import (
	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.With(auth).Get("/api/user/balance", userHandler.GetBalance) // GET /api/user/balance
	r.With(auth).Post("/api/user/recharge", userHandler.Recharge) // POST /api/user/recharge
}
