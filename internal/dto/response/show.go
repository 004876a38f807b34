package response

import (
	"moviebuzz/internal/data/entity"
)

type ShowResponse struct {
	ID         string            `json:"id"`
	MovieID    string            `json:"movie_id"`
	MovieTitle string            `json:"movie_title"`
	ShowDate   string            `json:"show_date"`
	ShowTime   string            `json:"show_time"`
	Price      int64             `json:"price"`
	Status     entity.ShowStatus `json:"status"`
}

func ShowToResponse(show *entity.Show) ShowResponse {
	return ShowResponse{
		ID:         show.ID.String(),
		MovieID:    show.MovieID.String(),
		MovieTitle: show.MovieTitle,
		ShowDate:   show.ShowDate,
		ShowTime:   show.ShowTime,
		Price:      show.Price,
		Status:     show.Status,
	}
}

// ShowBookingsResponse lists a show's bookings together with the tickets-sold
// count, which sums ticket counts over Confirmed bookings only.
type ShowBookingsResponse struct {
	Show        ShowResponse      `json:"show"`
	Bookings    []BookingResponse `json:"bookings"`
	TicketsSold int               `json:"tickets_sold"`
}
