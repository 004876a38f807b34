package usecase

import (
	"context"
	"fmt"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/dto/request"
	"moviebuzz/internal/dto/response"
	"moviebuzz/pkg/cache"
	"moviebuzz/pkg/omdb"
	"moviebuzz/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const movieListCacheKey = "movies:all"

type MovieService interface {
	// Public
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)

	// Admin
	AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo  *repository.Repository
	omdb  *omdb.Client
	cache *cache.Cache
	log   *zap.Logger
}

func NewMovieService(repo *repository.Repository, omdbClient *omdb.Client, movieCache *cache.Cache, log *zap.Logger) MovieService {
	return &movieService{
		repo:  repo,
		omdb:  omdbClient,
		cache: movieCache,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	var cached []response.MovieResponse
	if s.cache.Get(ctx, movieListCacheKey, &cached) {
		return cached, nil
	}

	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.cache.Set(ctx, movieListCacheKey, movieResponses)

	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// AddMovie looks the title up on OMDb and stores the returned metadata.
// Titles already in the catalog are rejected case-insensitively before the
// insert.
func (s *movieService) AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	result, err := s.omdb.FindByTitle(ctx, req.Title)
	if err != nil {
		s.log.Error("OMDb lookup failed", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("movie lookup: %w", err)
	}
	if result == nil {
		return nil, ErrMovieNotFound
	}

	// Duplicate check uses the canonical OMDb title, not the search term
	existing, err := s.repo.Movie.FindByTitle(ctx, result.Title)
	if err != nil {
		return nil, fmt.Errorf("check duplicate title: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateTitle
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:     result.Title,
		Genre:     result.Genre,
		Duration:  result.Runtime,
		PosterURL: result.Poster,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.cache.Invalidate(ctx, movieListCacheKey)

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.cache.Invalidate(ctx, movieListCacheKey)

	return nil
}
