package usecase

import (
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/events"
	"moviebuzz/pkg/cache"
	"moviebuzz/pkg/omdb"
	"moviebuzz/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Show    ShowService
	Booking BookingService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	omdbClient *omdb.Client,
	movieCache *cache.Cache,
	publisher *events.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Movie:   NewMovieService(repo, omdbClient, movieCache, log),
		Show:    NewShowService(repo, publisher, log),
		Booking: NewBookingService(repo, log),
	}
}
