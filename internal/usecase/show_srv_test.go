package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, users *fakeUserRepo, username string, balance int64) *entity.User {
	t.Helper()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username: username,
		Role:     entity.RoleCustomer,
		Balance:  balance,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedShow(t *testing.T, shows *fakeShowRepo, status entity.ShowStatus) *entity.Show {
	t.Helper()
	show := &entity.Show{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		MovieID:    uuid.New(),
		MovieTitle: "Inception",
		ShowDate:   "2030-06-15",
		ShowTime:   "19:30",
		Price:      500,
		Status:     status,
	}
	if err := shows.Create(context.Background(), show); err != nil {
		t.Fatalf("seed show: %v", err)
	}
	return show
}

func seedBooking(t *testing.T, bookings *fakeBookingRepo, user *entity.User, show *entity.Show, amount int64, status entity.BookingStatus) *entity.Booking {
	t.Helper()
	booking := &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		UserID:      user.ID,
		Username:    user.Username,
		ShowID:      show.ID,
		MovieTitle:  show.MovieTitle,
		ShowDate:    show.ShowDate,
		ShowTime:    show.ShowTime,
		AmountPaid:  amount,
		TicketCount: 1,
		Status:      status,
	}
	if err := bookings.Create(context.Background(), booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func TestCancelShowRefundsConfirmedBookings(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 200)
	bob := seedUser(t, users, "bob", 0)
	show := seedShow(t, shows, entity.ShowStatusActive)

	b1 := seedBooking(t, bookings, alice, show, 1000, entity.BookingStatusConfirmed)
	b2 := seedBooking(t, bookings, bob, show, 500, entity.BookingStatusConfirmed)

	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Refunded != 2 || result.Failed != 0 || result.Skipped != 0 {
		t.Errorf("counts = refunded %d, failed %d, skipped %d; want 2, 0, 0",
			result.Refunded, result.Failed, result.Skipped)
	}
	if result.Outcome != OutcomeFullyRefunded {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeFullyRefunded)
	}
	if got := users.balance(alice.ID); got != 1200 {
		t.Errorf("alice balance = %d, want 1200", got)
	}
	if got := users.balance(bob.ID); got != 500 {
		t.Errorf("bob balance = %d, want 500", got)
	}
	if got := bookings.status(b1.ID); got != entity.BookingStatusRefunded {
		t.Errorf("booking 1 status = %q, want Refunded", got)
	}
	if got := bookings.status(b2.ID); got != entity.BookingStatusRefunded {
		t.Errorf("booking 2 status = %q, want Refunded", got)
	}
	if got := shows.status(show.ID); got != entity.ShowStatusCancelled {
		t.Errorf("show status = %q, want Cancelled", got)
	}
}

func TestCancelShowWithoutBookings(t *testing.T) {
	repo, _, shows, _ := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	show := seedShow(t, shows, entity.ShowStatusActive)

	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Outcome != OutcomeNoRefundsNeeded {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeNoRefundsNeeded)
	}
	if result.TotalBookings != 0 {
		t.Errorf("total bookings = %d, want 0", result.TotalBookings)
	}
	if got := shows.status(show.ID); got != entity.ShowStatusCancelled {
		t.Errorf("show status = %q, want Cancelled", got)
	}
}

func TestCancelShowSkipsNonConfirmedBookings(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 100)
	show := seedShow(t, shows, entity.ShowStatusActive)

	confirmed := seedBooking(t, bookings, alice, show, 300, entity.BookingStatusConfirmed)
	seedBooking(t, bookings, alice, show, 300, entity.BookingStatusRefunded)
	seedBooking(t, bookings, alice, show, 300, entity.BookingStatusCancelled)

	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Refunded != 1 || result.Skipped != 2 {
		t.Errorf("counts = refunded %d, skipped %d; want 1, 2", result.Refunded, result.Skipped)
	}
	// Only the confirmed booking credits the wallet.
	if got := users.balance(alice.ID); got != 400 {
		t.Errorf("alice balance = %d, want 400", got)
	}
	if got := bookings.status(confirmed.ID); got != entity.BookingStatusRefunded {
		t.Errorf("confirmed booking status = %q, want Refunded", got)
	}
}

func TestCancelShowAlreadyCancelled(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 100)
	show := seedShow(t, shows, entity.ShowStatusCancelled)
	seedBooking(t, bookings, alice, show, 300, entity.BookingStatusRefunded)

	_, err := service.CancelShow(context.Background(), show.ID.String())
	if !errors.Is(err, repository.ErrAlreadyCancelled) {
		t.Fatalf("CancelShow() error = %v, want ErrAlreadyCancelled", err)
	}

	// No second fan-out: the already refunded booking is untouched.
	if got := users.balance(alice.ID); got != 100 {
		t.Errorf("alice balance = %d, want 100", got)
	}
}

func TestCancelShowMissingShow(t *testing.T) {
	repo, _, _, _ := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	_, err := service.CancelShow(context.Background(), uuid.New().String())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("CancelShow() error = %v, want ErrNotFound", err)
	}
}

func TestCancelShowBookingFetchFailure(t *testing.T) {
	repo, _, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	show := seedShow(t, shows, entity.ShowStatusActive)
	bookings.findByShowErr = errors.New("connection reset")

	// The cancellation already took effect, so the caller still gets a
	// result instead of an error.
	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Outcome != OutcomeNoRefundsNeeded {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomeNoRefundsNeeded)
	}
	if got := shows.status(show.ID); got != entity.ShowStatusCancelled {
		t.Errorf("show status = %q, want Cancelled", got)
	}
}

func TestCancelShowFailureIsolation(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 0)
	bob := seedUser(t, users, "bob", 0)
	show := seedShow(t, shows, entity.ShowStatusActive)

	aliceBooking := seedBooking(t, bookings, alice, show, 700, entity.BookingStatusConfirmed)
	bobBooking := seedBooking(t, bookings, bob, show, 400, entity.BookingStatusConfirmed)

	users.creditErr[alice.ID] = errors.New("connection reset")

	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Refunded != 1 || result.Failed != 1 {
		t.Errorf("counts = refunded %d, failed %d; want 1, 1", result.Refunded, result.Failed)
	}
	if result.Outcome != OutcomePartiallyRefunded {
		t.Errorf("outcome = %q, want %q", result.Outcome, OutcomePartiallyRefunded)
	}

	// The failed refund leaves its booking Confirmed for a retry; the
	// sibling is unaffected.
	if got := bookings.status(aliceBooking.ID); got != entity.BookingStatusConfirmed {
		t.Errorf("alice booking status = %q, want Confirmed", got)
	}
	if got := bookings.status(bobBooking.ID); got != entity.BookingStatusRefunded {
		t.Errorf("bob booking status = %q, want Refunded", got)
	}
	if got := users.balance(bob.ID); got != 400 {
		t.Errorf("bob balance = %d, want 400", got)
	}
}

func TestCancelShowConcurrentRefundsSameUser(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 0)
	show := seedShow(t, shows, entity.ShowStatusActive)

	const n = 20
	for i := 0; i < n; i++ {
		seedBooking(t, bookings, alice, show, 10, entity.BookingStatusConfirmed)
	}

	result, err := service.CancelShow(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("CancelShow() error = %v", err)
	}

	if result.Refunded != n {
		t.Errorf("refunded = %d, want %d", result.Refunded, n)
	}
	if got := users.balance(alice.ID); got != n*10 {
		t.Errorf("alice balance = %d, want %d", got, n*10)
	}
}

func TestCreateShowRejectsPastDate(t *testing.T) {
	repo, _, _, _ := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	movie := &entity.Movie{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title: "Inception",
	}
	if err := repo.Movie.Create(context.Background(), movie); err != nil {
		t.Fatalf("seed movie: %v", err)
	}

	_, err := service.CreateShow(context.Background(), &request.CreateShowRequest{
		MovieID:  movie.ID.String(),
		ShowDate: "2020-01-01",
		ShowTime: "19:30",
		Price:    500,
	})
	if !errors.Is(err, ErrPastShowDate) {
		t.Fatalf("CreateShow() error = %v, want ErrPastShowDate", err)
	}
}

func TestGetShowBookingsCountsConfirmedTicketsOnly(t *testing.T) {
	repo, users, shows, bookings := newFakeRepo()
	service := NewShowService(repo, nil, zap.NewNop())

	alice := seedUser(t, users, "alice", 0)
	show := seedShow(t, shows, entity.ShowStatusActive)

	confirmed := seedBooking(t, bookings, alice, show, 500, entity.BookingStatusConfirmed)
	confirmed.TicketCount = 3
	seedBooking(t, bookings, alice, show, 500, entity.BookingStatusRefunded)

	result, err := service.GetShowBookings(context.Background(), show.ID.String())
	if err != nil {
		t.Fatalf("GetShowBookings() error = %v", err)
	}

	if len(result.Bookings) != 2 {
		t.Errorf("bookings = %d, want 2", len(result.Bookings))
	}
	if result.TicketsSold != 3 {
		t.Errorf("tickets sold = %d, want 3", result.TicketsSold)
	}
}
