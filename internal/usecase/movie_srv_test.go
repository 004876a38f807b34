package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviebuzz/internal/dto/request"
	"moviebuzz/pkg/omdb"
	"moviebuzz/pkg/utils"

	"go.uber.org/zap"
)

// omdbStub serves canned OMDb responses keyed by the "t" query parameter.
func omdbStub(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("t")
		body, ok := responses[title]
		if !ok {
			body = `{"Response":"False","Error":"Movie not found!"}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func newMovieService(t *testing.T, server *httptest.Server) (MovieService, *fakeMovieRepo) {
	t.Helper()
	repo, _, _, _ := newFakeRepo()
	client := omdb.NewClient(utils.OMDBConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 2,
	}, zap.NewNop())

	service := NewMovieService(repo, client, nil, zap.NewNop())
	return service, repo.Movie.(*fakeMovieRepo)
}

func TestAddMovieFromOMDb(t *testing.T) {
	server := omdbStub(t, map[string]string{
		"inception": `{"Title":"Inception","Genre":"Action, Sci-Fi","Runtime":"148 min","Poster":"https://img/inception.jpg","Response":"True"}`,
	})
	defer server.Close()

	service, _ := newMovieService(t, server)

	movie, err := service.AddMovie(context.Background(), &request.AddMovieRequest{Title: "inception"})
	if err != nil {
		t.Fatalf("AddMovie() error = %v", err)
	}

	// The stored record carries the canonical OMDb metadata, not the
	// search term.
	if movie.Title != "Inception" {
		t.Errorf("title = %q, want Inception", movie.Title)
	}
	if movie.Genre != "Action, Sci-Fi" {
		t.Errorf("genre = %q, want Action, Sci-Fi", movie.Genre)
	}
	if movie.Duration != "148 min" {
		t.Errorf("duration = %q, want 148 min", movie.Duration)
	}
}

func TestAddMovieUnknownTitle(t *testing.T) {
	server := omdbStub(t, nil)
	defer server.Close()

	service, movies := newMovieService(t, server)

	_, err := service.AddMovie(context.Background(), &request.AddMovieRequest{Title: "No Such Film"})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("AddMovie() error = %v, want ErrMovieNotFound", err)
	}

	all, _ := movies.FindAll(context.Background())
	if len(all) != 0 {
		t.Errorf("catalog size = %d, want 0", len(all))
	}
}

func TestAddMovieDuplicateTitle(t *testing.T) {
	body := `{"Title":"Inception","Genre":"Action","Runtime":"148 min","Poster":"","Response":"True"}`
	server := omdbStub(t, map[string]string{
		"inception": body,
		"INCEPTION": body,
	})
	defer server.Close()

	service, _ := newMovieService(t, server)

	if _, err := service.AddMovie(context.Background(), &request.AddMovieRequest{Title: "inception"}); err != nil {
		t.Fatalf("AddMovie() error = %v", err)
	}

	// Case differences in the search term still resolve to the same
	// canonical title, so the second add is a duplicate.
	_, err := service.AddMovie(context.Background(), &request.AddMovieRequest{Title: "INCEPTION"})
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("AddMovie() error = %v, want ErrDuplicateTitle", err)
	}
}

func TestGetMovieByIDMissing(t *testing.T) {
	server := omdbStub(t, nil)
	defer server.Close()

	service, _ := newMovieService(t, server)

	_, err := service.GetMovieByID(context.Background(), "b2f4e7a0-0000-0000-0000-000000000001")
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("GetMovieByID() error = %v, want ErrMovieNotFound", err)
	}
}
