package events

import "time"

// RefundEvent records the outcome of a single refund attempt during a show
// cancellation, for consumption by back-office tooling. Amount is in the
// smallest currency unit.
type RefundEvent struct {
	ShowID     string    `json:"show_id"`
	BookingID  string    `json:"booking_id"`
	Username   string    `json:"username"`
	Amount     int64     `json:"amount"`
	Succeeded  bool      `json:"succeeded"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
