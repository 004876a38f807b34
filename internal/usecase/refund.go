package usecase

import (
	"context"
	"fmt"
	"time"

	"moviebuzz/internal/data/entity"
	"moviebuzz/internal/data/repository"
	"moviebuzz/internal/events"

	"go.uber.org/zap"
)

// refundProcessor refunds one booking: credit the user's balance by exactly
// the amount paid, then flip the booking to Refunded. The balance credit is a
// single atomic increment, so two refunds landing on the same user cannot
// lose an update. The booking status write only happens after the credit
// succeeded: a booking is never marked Refunded without the funds having
// moved. Callers must only pass Confirmed bookings.
type refundProcessor struct {
	users    repository.UserRepository
	bookings repository.BookingRepository
	events   *events.Publisher
	log      *zap.Logger
}

func newRefundProcessor(
	users repository.UserRepository,
	bookings repository.BookingRepository,
	publisher *events.Publisher,
	log *zap.Logger,
) *refundProcessor {
	return &refundProcessor{
		users:    users,
		bookings: bookings,
		events:   publisher,
		log:      log.With(zap.String("component", "refund")),
	}
}

// Process refunds a single booking. A failure terminates this booking's
// refund only; the caller keeps processing its siblings.
func (p *refundProcessor) Process(ctx context.Context, booking *entity.Booking) error {
	// The credit doubles as the user lookup: zero rows means the user is
	// gone, and the booking stays Confirmed for a later retry.
	if err := p.users.CreditBalance(ctx, booking.UserID, booking.AmountPaid); err != nil {
		p.log.Error("Refund credit failed, booking left Confirmed",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("username", booking.Username),
			zap.Int64("amount", booking.AmountPaid),
		)
		p.publish(ctx, booking, false, err.Error())
		return fmt.Errorf("refund booking %s: %w", booking.ID.String(), err)
	}

	if err := p.bookings.UpdateStatus(ctx, booking.ID, entity.BookingStatusRefunded); err != nil {
		// The money moved but the booking still reads Confirmed. Surface
		// loudly: a repeated cancellation would double-credit this booking
		// unless an operator reconciles it first.
		p.log.Error("Balance credited but booking not marked Refunded",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("username", booking.Username),
			zap.Int64("amount", booking.AmountPaid),
		)
		p.publish(ctx, booking, false, "credited but status update failed")
		return fmt.Errorf("mark booking %s refunded: %w", booking.ID.String(), err)
	}

	p.log.Info("Booking refunded",
		zap.String("booking_id", booking.ID.String()),
		zap.String("username", booking.Username),
		zap.Int64("amount", booking.AmountPaid),
	)
	p.publish(ctx, booking, true, "")

	return nil
}

// publish emits the refund outcome for back-office consumers, best-effort.
func (p *refundProcessor) publish(ctx context.Context, booking *entity.Booking, succeeded bool, reason string) {
	event := events.RefundEvent{
		ShowID:     booking.ShowID.String(),
		BookingID:  booking.ID.String(),
		Username:   booking.Username,
		Amount:     booking.AmountPaid,
		Succeeded:  succeeded,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}

	if err := p.events.PublishRefund(ctx, event); err != nil {
		p.log.Warn("Refund event not published",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}
}
