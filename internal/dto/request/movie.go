package request

// AddMovieRequest names a title to look up on OMDb and add to the catalog.
type AddMovieRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}
