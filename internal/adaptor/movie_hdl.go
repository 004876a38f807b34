package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/usecase"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	// Optional ?limit=N trims the list for mobile clients
	if limit := utils.ParseInt(r.URL.Query().Get("limit"), 0); limit > 0 && limit < len(movies) {
		movies = movies[:limit]
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// AddMovie handles POST /api/admin/movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.AddMovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add movie")
		return
	}

	utils.ResponseCreated(w, "Movie added successfully", movie)
}

// DeleteMovie handles DELETE /api/admin/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrDuplicateTitle):
		h.log.Warn(operation+" failed - duplicate title", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
