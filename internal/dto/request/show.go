package request

type CreateShowRequest struct {
	MovieID  string `json:"movie_id" validate:"required,uuid"`
	ShowDate string `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime string `json:"show_time" validate:"required,datetime=15:04"`
	// Price per ticket in the smallest currency unit
	Price int64 `json:"price" validate:"required,gt=0"`
}
