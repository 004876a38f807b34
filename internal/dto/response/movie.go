package response

import (
	"moviebuzz/internal/data/entity"
)

type MovieResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	Duration  string `json:"duration"`
	PosterURL string `json:"poster_url"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		Title:     movie.Title,
		Genre:     movie.Genre,
		Duration:  movie.Duration,
		PosterURL: movie.PosterURL,
	}
}
