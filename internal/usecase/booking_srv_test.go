package usecase

import (
	"context"
	"errors"
	"testing"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateBookingDebitsAndConfirms(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 2000)
	show := seedShow(t, shows, entity.ShowStatusActive)

	booking, err := service.CreateBooking(context.Background(), alice.ID.String(), alice.Username, &request.CreateBookingRequest{
		ShowID:      show.ID.String(),
		TicketCount: 3,
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if booking.AmountPaid != 1500 {
		t.Errorf("amount paid = %d, want 1500", booking.AmountPaid)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %q, want Confirmed", booking.Status)
	}
	if booking.MovieTitle != show.MovieTitle {
		t.Errorf("movie title = %q, want %q", booking.MovieTitle, show.MovieTitle)
	}
	if got := users.balance(alice.ID); got != 500 {
		t.Errorf("balance = %d, want 500", got)
	}
	if bookings.count() != 1 {
		t.Errorf("bookings stored = %d, want 1", bookings.count())
	}
}

func TestCreateBookingInsufficientBalance(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 400)
	show := seedShow(t, shows, entity.ShowStatusActive)

	_, err := service.CreateBooking(context.Background(), alice.ID.String(), alice.Username, &request.CreateBookingRequest{
		ShowID:      show.ID.String(),
		TicketCount: 1,
	})
	if !errors.Is(err, repository.ErrInsufficientBalance) {
		t.Fatalf("CreateBooking() error = %v, want ErrInsufficientBalance", err)
	}

	if got := users.balance(alice.ID); got != 400 {
		t.Errorf("balance = %d, want 400", got)
	}
	if bookings.count() != 0 {
		t.Errorf("bookings stored = %d, want 0", bookings.count())
	}
}

func TestCreateBookingRejectsCancelledShow(t *testing.T) {
	repo, users, shows, _ := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 2000)
	show := seedShow(t, shows, entity.ShowStatusCancelled)

	_, err := service.CreateBooking(context.Background(), alice.ID.String(), alice.Username, &request.CreateBookingRequest{
		ShowID:      show.ID.String(),
		TicketCount: 1,
	})
	if !errors.Is(err, ErrShowNotActive) {
		t.Fatalf("CreateBooking() error = %v, want ErrShowNotActive", err)
	}

	if got := users.balance(alice.ID); got != 2000 {
		t.Errorf("balance = %d, want 2000", got)
	}
}

func TestCreateBookingMissingShow(t *testing.T) {
	repo, users, _, _ := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 2000)

	_, err := service.CreateBooking(context.Background(), alice.ID.String(), alice.Username, &request.CreateBookingRequest{
		ShowID:      uuid.New().String(),
		TicketCount: 1,
	})
	if !errors.Is(err, ErrShowNotFound) {
		t.Fatalf("CreateBooking() error = %v, want ErrShowNotFound", err)
	}
}

func TestCreateBookingCreditsBackOnCreateFailure(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 2000)
	show := seedShow(t, shows, entity.ShowStatusActive)

	bookings.createErr = errors.New("connection reset")

	_, err := service.CreateBooking(context.Background(), alice.ID.String(), alice.Username, &request.CreateBookingRequest{
		ShowID:      show.ID.String(),
		TicketCount: 2,
	})
	if err == nil {
		t.Fatal("CreateBooking() error = nil, want error")
	}

	// The debit is compensated when the booking row never lands.
	if got := users.balance(alice.ID); got != 2000 {
		t.Errorf("balance = %d, want 2000", got)
	}
}

func TestGetUserBookings(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewBookingService(repo, zap.NewNop())

	alice := seedUser(t, users, "alice", 0)
	bob := seedUser(t, users, "bob", 0)
	show := seedShow(t, shows, entity.ShowStatusActive)

	seedBooking(t, bookings, alice, show, 500, entity.BookingStatusConfirmed)
	seedBooking(t, bookings, alice, show, 500, entity.BookingStatusRefunded)
	seedBooking(t, bookings, bob, show, 500, entity.BookingStatusConfirmed)

	got, err := service.GetUserBookings(context.Background(), alice.ID.String())
	if err != nil {
		t.Fatalf("GetUserBookings() error = %v", err)
	}

	if len(got) != 2 {
		t.Errorf("bookings = %d, want 2", len(got))
	}
	for _, booking := range got {
		if booking.Username != "alice" {
			t.Errorf("booking username = %q, want alice", booking.Username)
		}
	}
}
