package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. The balance and status mutations
// mirror the conditional-update semantics of the SQL layer, including which
// sentinel errors they wrap.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	creditErr map[uuid.UUID]error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uuid.UUID]*entity.User),
		creditErr: make(map[uuid.UUID]error),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", repository.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.creditErr[id]; ok {
		return err
	}
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("credit balance: %w", repository.ErrNotFound)
	}
	user.Balance += amount
	return nil
}

func (f *fakeUserRepo) DebitBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return fmt.Errorf("debit balance: %w", repository.ErrNotFound)
	}
	if user.Balance < amount {
		return fmt.Errorf("debit balance: %w", repository.ErrInsufficientBalance)
	}
	user.Balance -= amount
	return nil
}

func (f *fakeUserRepo) balance(id uuid.UUID) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id].Balance
}

type fakeShowRepo struct {
	mu    sync.Mutex
	shows map[uuid.UUID]*entity.Show
}

func newFakeShowRepo() *fakeShowRepo {
	return &fakeShowRepo{shows: make(map[uuid.UUID]*entity.Show)}
}

func (f *fakeShowRepo) Create(ctx context.Context, show *entity.Show) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows[show.ID] = show
	return nil
}

func (f *fakeShowRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Show, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	show, ok := f.shows[id]
	if !ok {
		return nil, nil
	}
	copied := *show
	return &copied, nil
}

func (f *fakeShowRepo) FindAll(ctx context.Context) ([]*entity.Show, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shows := make([]*entity.Show, 0, len(f.shows))
	for _, show := range f.shows {
		copied := *show
		shows = append(shows, &copied)
	}
	return shows, nil
}

func (f *fakeShowRepo) FindActiveByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Show, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var shows []*entity.Show
	for _, show := range f.shows {
		if show.MovieID == movieID && show.Status == entity.ShowStatusActive {
			copied := *show
			shows = append(shows, &copied)
		}
	}
	return shows, nil
}

func (f *fakeShowRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	show, ok := f.shows[id]
	if !ok {
		return fmt.Errorf("cancel show: %w", repository.ErrNotFound)
	}
	if show.Status != entity.ShowStatusActive {
		return fmt.Errorf("cancel show: %w", repository.ErrAlreadyCancelled)
	}
	show.Status = entity.ShowStatusCancelled
	return nil
}

func (f *fakeShowRepo) status(id uuid.UUID) entity.ShowStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shows[id].Status
}

type fakeBookingRepo struct {
	mu            sync.Mutex
	bookings      map[uuid.UUID]*entity.Booking
	createErr     error
	findByShowErr error
	statusErr     map[uuid.UUID]error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[uuid.UUID]*entity.Booking),
		statusErr: make(map[uuid.UUID]error),
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) FindByShowID(ctx context.Context, showID uuid.UUID) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findByShowErr != nil {
		return nil, f.findByShowErr
	}
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.ShowID == showID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.statusErr[bookingID]; ok {
		return err
	}
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("update booking status: %w", repository.ErrNotFound)
	}
	booking.Status = status
	return nil
}

func (f *fakeBookingRepo) status(id uuid.UUID) entity.BookingStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id].Status
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeMovieRepo) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, movie := range f.movies {
		if strings.EqualFold(movie.Title, title) {
			copied := *movie
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movies := make([]*entity.Movie, 0, len(f.movies))
	for _, movie := range f.movies {
		copied := *movie
		movies = append(movies, &copied)
	}
	return movies, nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.movies, id)
	return nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("revoke session: %w", repository.ErrNotFound)
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

// newFakeRepo assembles a Repository backed by the in-memory fakes.
func newFakeRepo() (*repository.Repository, *fakeUserRepo, *fakeShowRepo, *fakeBookingRepo) {
	users := newFakeUserRepo()
	shows := newFakeShowRepo()
	bookings := newFakeBookingRepo()

	repo := &repository.Repository{
		User:    users,
		Session: newFakeSessionRepo(),
		Movie:   newFakeMovieRepo(),
		Show:    shows,
		Booking: bookings,
	}
	return repo, users, shows, bookings
}
