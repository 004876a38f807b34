package response

import (
	"time"

	"moviebuzz/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	Username    string               `json:"username"`
	ShowID      string               `json:"show_id"`
	MovieTitle  string               `json:"movie_title"`
	ShowDate    string               `json:"show_date"`
	ShowTime    string               `json:"show_time"`
	AmountPaid  int64                `json:"amount_paid"`
	TicketCount int                  `json:"ticket_count"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		Username:    booking.Username,
		ShowID:      booking.ShowID.String(),
		MovieTitle:  booking.MovieTitle,
		ShowDate:    booking.ShowDate,
		ShowTime:    booking.ShowTime,
		AmountPaid:  booking.AmountPaid,
		TicketCount: booking.TicketCount,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt,
	}
}
