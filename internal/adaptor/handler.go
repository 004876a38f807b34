package adaptor

import (
	"moviebuzz/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Movie   *MovieHandler
	Show    *ShowHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Show:    NewShowHandler(service.Show, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
