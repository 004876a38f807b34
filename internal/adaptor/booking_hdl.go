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

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), username, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// GetUserBookings handles GET /api/user/bookings
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrShowNotFound):
		h.log.Warn(operation+" failed - show not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrShowNotActive):
		h.log.Warn(operation+" failed - show not active", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrInsufficientBalance):
		h.log.Warn(operation+" failed - insufficient balance", zap.Error(err))
		utils.ResponseBadRequest(w, "Insufficient balance", nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
