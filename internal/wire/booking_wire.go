package wire

import (
	"moviebuzz/internal/adaptor"
	"moviebuzz/internal/data/repository"
	"moviebuzz/pkg/middleware"
	"moviebuzz/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	r.With(auth).Post("/api/bookings", bookingHandler.CreateBooking)       // POST /api/bookings
	r.With(auth).Get("/api/user/bookings", bookingHandler.GetUserBookings) // GET /api/user/bookings
}
