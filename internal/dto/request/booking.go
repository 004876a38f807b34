package request

type CreateBookingRequest struct {
	ShowID      string `json:"show_id" validate:"required,uuid"`
	TicketCount int    `json:"ticket_count" validate:"required,min=1,max=10"`
}
