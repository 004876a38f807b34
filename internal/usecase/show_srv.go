package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/dto/response"
	"moviebuzz/internal/events"
	"moviebuzz/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cancellation outcomes reported to the caller.
const (
	OutcomeFullyRefunded     = "fully_refunded"
	OutcomePartiallyRefunded = "partially_refunded"
	OutcomeNoRefundsNeeded   = "no_refunds_needed"
)

type ShowService interface {
	// Public
	GetShowsByMovie(ctx context.Context, movieID string) ([]response.ShowResponse, error)

	// Admin
	CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error)
	GetShows(ctx context.Context) ([]response.ShowResponse, error)
	GetShowBookings(ctx context.Context, showID string) (*response.ShowBookingsResponse, error)
	CancelShow(ctx context.Context, showID string) (*response.CancellationResponse, error)
}

type showService struct {
	repo    *repository.Repository
	refunds *refundProcessor
	log     *zap.Logger
}

func NewShowService(repo *repository.Repository, publisher *events.Publisher, log *zap.Logger) ShowService {
	return &showService{
		repo:    repo,
		refunds: newRefundProcessor(repo.User, repo.Booking, publisher, log),
		log:     log.With(zap.String("service", "show")),
	}
}

func (s *showService) CreateShow(ctx context.Context, req *request.CreateShowRequest) (*response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create show validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	showDate, err := time.Parse("2006-01-02", req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show date %s: %w", req.ShowDate, err)
	}
	if showDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, ErrPastShowDate
	}

	now := time.Now()
	show := &entity.Show{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		ShowDate:   req.ShowDate,
		ShowTime:   req.ShowTime,
		Price:      req.Price,
		Status:     entity.ShowStatusActive,
	}

	if err := s.repo.Show.Create(ctx, show); err != nil {
		s.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("movie_title", movie.Title),
		)
		return nil, fmt.Errorf("create show: %w", err)
	}

	s.log.Info("Show scheduled",
		zap.String("show_id", show.ID.String()),
		zap.String("movie_title", movie.Title),
		zap.String("show_date", req.ShowDate),
		zap.String("show_time", req.ShowTime),
		zap.Int64("price", req.Price),
	)

	resp := response.ShowToResponse(show)
	return &resp, nil
}

func (s *showService) GetShows(ctx context.Context) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get shows", zap.Error(err))
		return nil, fmt.Errorf("get shows: %w", err)
	}

	showResponses := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		showResponses[i] = response.ShowToResponse(show)
	}

	return showResponses, nil
}

func (s *showService) GetShowsByMovie(ctx context.Context, movieID string) ([]response.ShowResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	shows, err := s.repo.Show.FindActiveByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get shows by movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get shows for movie: %w", err)
	}

	showResponses := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		showResponses[i] = response.ShowToResponse(show)
	}

	return showResponses, nil
}

// GetShowBookings lists every booking against a show. The tickets-sold count
// only sums Confirmed bookings; Refunded and Cancelled ones are excluded.
func (s *showService) GetShowBookings(ctx context.Context, showID string) (*response.ShowBookingsResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID format %s: %w", showID, err)
	}

	show, err := s.repo.Show.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find show: %w", err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	bookings, err := s.repo.Booking.FindByShowID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get show bookings", zap.Error(err), zap.String("show_id", showID))
		return nil, fmt.Errorf("get show bookings: %w", err)
	}

	ticketsSold := 0
	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
		if booking.Status == entity.BookingStatusConfirmed {
			ticketsSold += booking.TicketCount
		}
	}

	return &response.ShowBookingsResponse{
		Show:        response.ShowToResponse(show),
		Bookings:    bookingResponses,
		TicketsSold: ticketsSold,
	}, nil
}

// CancelShow cancels a show and refunds every Confirmed booking against it.
//
// The status flip is the only strictly ordered step: if it fails nothing else
// happens. After it, each Confirmed booking is refunded independently and
// concurrently; one refund failing never stops the others, and by then the
// cancellation itself has already taken effect. The returned response counts
// exact outcomes rather than assuming the fan-out succeeded.
func (s *showService) CancelShow(ctx context.Context, showID string) (*response.CancellationResponse, error) {
	id, err := uuid.Parse(showID)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID format %s: %w", showID, err)
	}

	// Step 1: mark cancelled. The conditional update makes re-cancelling an
	// error instead of a second fan-out.
	if err := s.repo.Show.Cancel(ctx, id); err != nil {
		s.log.Error("Failed to cancel show", zap.Error(err), zap.String("show_id", showID))
		return nil, fmt.Errorf("cancel show: %w", err)
	}

	s.log.Info("Show cancelled", zap.String("show_id", showID))

	result := &response.CancellationResponse{
		ShowID:  showID,
		Outcome: OutcomeNoRefundsNeeded,
	}

	// Step 2: load bookings. The show is already cancelled at this point, so
	// a fetch failure downgrades to "nothing refunded", not a rollback.
	bookings, err := s.repo.Booking.FindByShowID(ctx, id)
	if err != nil {
		s.log.Error("Show cancelled but bookings could not be loaded for refund",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return result, nil
	}

	result.TotalBookings = len(bookings)

	// Step 3: filter to Confirmed. Bookings already Refunded or Cancelled
	// are skipped, which keeps a repeated run from double-crediting.
	var confirmed []*entity.Booking
	for _, booking := range bookings {
		if booking.Status == entity.BookingStatusConfirmed {
			confirmed = append(confirmed, booking)
		}
	}
	result.Skipped = len(bookings) - len(confirmed)

	if len(confirmed) == 0 {
		s.log.Info("Show cancelled with no refunds needed",
			zap.String("show_id", showID),
			zap.Int("total_bookings", len(bookings)),
		)
		return result, nil
	}

	// Step 4: refund each booking concurrently. Each touches its own booking
	// row, and balance credits are atomic increments, so two bookings by the
	// same user are safe too.
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, booking := range confirmed {
		wg.Add(1)
		go func(b *entity.Booking) {
			defer wg.Done()

			err := s.refunds.Process(ctx, b)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
			} else {
				result.Refunded++
			}
		}(booking)
	}
	wg.Wait()

	if result.Failed > 0 {
		result.Outcome = OutcomePartiallyRefunded
	} else {
		result.Outcome = OutcomeFullyRefunded
	}

	s.log.Info("Refund fan-out complete",
		zap.String("show_id", showID),
		zap.Int("refunded", result.Refunded),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}
