package usecase

import (
	"context"
	"fmt"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/dto/response"
	"moviebuzz/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID, username string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, username string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	showID, err := uuid.Parse(req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID format %s: %w", req.ShowID, err)
	}

	// Step 1: the show must exist and still be running.
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show: %w", err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}
	if show.Status != entity.ShowStatusActive {
		return nil, ErrShowNotActive
	}

	total := show.Price * int64(req.TicketCount)

	// Step 2: take payment. The debit is guarded, so an insufficient balance
	// surfaces here rather than leaving the user negative.
	if err := s.repo.User.DebitBalance(ctx, uid, total); err != nil {
		s.log.Warn("Booking payment failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int64("amount", total),
		)
		return nil, fmt.Errorf("debit balance: %w", err)
	}

	// Step 3: record the booking. AmountPaid freezes the price at purchase
	// time; a refund credits this amount even if the show is repriced later.
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      uid,
		Username:    username,
		ShowID:      show.ID,
		MovieTitle:  show.MovieTitle,
		ShowDate:    show.ShowDate,
		ShowTime:    show.ShowTime,
		AmountPaid:  total,
		TicketCount: req.TicketCount,
		Status:      entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking after debit, crediting back",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int64("amount", total),
		)
		if creditErr := s.repo.User.CreditBalance(ctx, uid, total); creditErr != nil {
			s.log.Error("Failed to credit back after booking failure",
				zap.Error(creditErr),
				zap.String("user_id", userID),
				zap.Int64("amount", total),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("movie_title", show.MovieTitle),
		zap.Int("ticket_count", req.TicketCount),
		zap.Int64("amount_paid", total),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, uid)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}
