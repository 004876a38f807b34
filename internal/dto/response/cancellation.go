package response

// CancellationResponse reports the outcome of a show cancellation. The show
// itself is always Cancelled when this response is produced; the refund
// counters describe how the fan-out went. Outcome is one of "fully_refunded",
// "partially_refunded" or "no_refunds_needed".
type CancellationResponse struct {
	ShowID        string `json:"show_id"`
	Outcome       string `json:"outcome"`
	TotalBookings int    `json:"total_bookings"`
	Refunded      int    `json:"refunded"`
	Failed        int    `json:"failed"`
	Skipped       int    `json:"skipped"`
}
