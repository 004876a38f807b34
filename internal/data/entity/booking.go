package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusRefunded  BookingStatus = "Refunded"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking freezes the purchase: AmountPaid is price x ticket count at
// purchase time and never changes afterwards. A refund flips Status to
// Refunded and credits exactly AmountPaid back, it never recomputes the
// amount. MovieTitle, ShowDate and ShowTime are denormalized copies taken
// from the show when the booking is created.
type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	Username    string        `db:"username"`
	ShowID      uuid.UUID     `db:"show_id"`
	MovieTitle  string        `db:"movie_title"`
	ShowDate    string        `db:"show_date"`
	ShowTime    string        `db:"show_time"`
	AmountPaid  int64         `db:"amount_paid"`
	TicketCount int           `db:"ticket_count"`
	Status      BookingStatus `db:"status"`
}
