package wire

import (
	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShow(
	r chi.Router,
	showHandler *adaptor.ShowHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/shows", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", showHandler.CreateShow)                  // POST /api/admin/shows
		r.Get("/", showHandler.GetShows)                     // GET /api/admin/shows
		r.Get("/{id}/bookings", showHandler.GetShowBookings) // GET /api/admin/shows/{id}/bookings
		r.Put("/{id}/cancel", showHandler.CancelShow)        // PUT /api/admin/shows/{id}/cancel
	})
}
