package entity

// Movie is seeded from OMDb lookups. Title is unique case-insensitively,
// enforced at insert time by the movie service.
type Movie struct {
	Base
	Title     string `db:"title"`
	Genre     string `db:"genre"`
	Duration  string `db:"duration"`
	PosterURL string `db:"poster_url"`
}
