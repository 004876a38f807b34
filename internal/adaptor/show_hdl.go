package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/usecase"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// GetShowsByMovie handles GET /api/movies/{id}/shows
func (h *ShowHandler) GetShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	shows, err := h.service.GetShowsByMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get shows by movie")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved successfully", shows)
}

// CreateShow handles POST /api/admin/shows
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.CreateShow(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create show")
		return
	}

	utils.ResponseCreated(w, "Show scheduled successfully", show)
}

// GetShows handles GET /api/admin/shows
func (h *ShowHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.GetShows(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get shows")
		return
	}

	utils.ResponseSuccess(w, "Shows retrieved successfully", shows)
}

// GetShowBookings handles GET /api/admin/shows/{id}/bookings
func (h *ShowHandler) GetShowBookings(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	bookings, err := h.service.GetShowBookings(r.Context(), showID)
	if err != nil {
		h.handleServiceError(w, err, "get show bookings")
		return
	}

	utils.ResponseSuccess(w, "Show bookings retrieved successfully", bookings)
}

// CancelShow handles PUT /api/admin/shows/{id}/cancel
func (h *ShowHandler) CancelShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	result, err := h.service.CancelShow(r.Context(), showID)
	if err != nil {
		h.handleServiceError(w, err, "cancel show")
		return
	}

	utils.ResponseSuccess(w, "Show cancelled", result)
}

func (h *ShowHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrShowNotFound),
		errors.Is(err, usecase.ErrMovieNotFound),
		errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrAlreadyCancelled):
		h.log.Warn(operation+" failed - already cancelled", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrPastShowDate):
		h.log.Warn(operation+" failed - past date", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
