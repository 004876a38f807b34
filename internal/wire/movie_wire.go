package wire

import (
	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	showHandler *adaptor.ShowHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.GetMovies)                 // GET /api/movies
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)         // GET /api/movies/{id}
	r.Get("/api/movies/{id}/shows", showHandler.GetShowsByMovie) // GET /api/movies/{id}/shows

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", movieHandler.AddMovie)          // POST /api/admin/movies
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /api/admin/movies/{id}
	})
}
