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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetBalance handles GET /api/user/balance
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	balance, err := h.service.GetBalance(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get balance")
		return
	}

	utils.ResponseSuccess(w, "Balance retrieved successfully", balance)
}

// Recharge handles POST /api/user/recharge
func (h *UserHandler) Recharge(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "User not authenticated")
		return
	}

	var req request.RechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	balance, err := h.service.Recharge(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "recharge")
		return
	}

	utils.ResponseSuccess(w, "Balance recharged successfully", balance)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
