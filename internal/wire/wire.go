package wire

import (
	"net/http"

	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/events"
	"moviebuzz/internal/usecase"
	"moviebuzz/pkg/cache"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/omdb"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes services, handlers and routes
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	omdbClient *omdb.Client,
	movieCache *cache.Cache,
	publisher *events.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, omdbClient, movieCache, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireMovie(r, handler.Movie, handler.Show, repo, config, logger)
	wireShow(r, handler.Show, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
