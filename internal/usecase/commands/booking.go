package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"
	"stayhub/internal/domain/wallet"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookingListingNotFound = errs.New("listing not found")
	ErrOnlyGuestsCanBook      = errs.New("only guests can book a stay")
)

const (
	msgBookingSuccess    = "Successfully booked!"
	msgInvalidDates      = "Check-out date must be after check-in date."
	msgInsufficientFunds = "We couldn't complete your request because your funds are insufficient."
	msgPaymentFailed     = "We couldn't process your payment. Please try again."
	msgDatesUnavailable  = "The listing is unavailable for the selected dates."
	msgBookingRefunded   = "We couldn't complete your booking. Your payment has been refunded."
	msgRefundFailed      = "We couldn't complete your booking or refund your payment. Please contact support."
)

type CreateBookingInput struct {
	ListingID    uuid.UUID
	GuestID      uuid.UUID
	GuestRole    string
	CheckInDate  string
	CheckOutDate string
}

// BookingResult is the structured mutation payload: domain-rule violations
// come back as a failed payload, not as a transport error.
type BookingResult struct {
	Code    int
	Success bool
	Message string
	Booking *queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	listings ListingReader
	ledger   FundsLedger
	bookings BookingWriter
	clk      clock.Clock
}

func NewBookingCommands(listings ListingReader, ledger FundsLedger, bookings BookingWriter, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		listings: listings,
		ledger:   ledger,
		bookings: bookings,
		clk:      clk,
	}
}

// CreateBooking runs the booking saga: quote the stay, debit the guest's
// wallet, persist the booking. The debit is the only step with a
// compensating action; if the persist fails the guest is refunded in full.
// Nothing is idempotent here: a retried request books and charges again.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	if in.GuestRole != queries.RoleGuest {
		return nil, ErrOnlyGuestsCanBook
	}

	// Date validation precedes any funds movement.
	dates, err := booking.ParseDateRange(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return failedBooking(http.StatusBadRequest, msgInvalidDates), nil
	}

	snapshot, err := c.listings.SnapshotByID(ctx, in.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingListingNotFound)
		}
		return nil, errs.Wrap(err, "failed to quote stay")
	}

	totalCost, err := listing.TotalCost(snapshot.CostPerNight, dates.Nights())
	if err != nil {
		return failedBooking(http.StatusBadRequest, msgInvalidDates), nil
	}

	if _, err := c.ledger.Debit(ctx, in.GuestID, totalCost); err != nil {
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return failedBooking(http.StatusBadRequest, msgInsufficientFunds), nil
		}
		slog.Error("booking debit failed",
			"guest_id", in.GuestID,
			"listing_id", in.ListingID,
			"amount", totalCost,
			"error", err.Error())
		return failedBooking(http.StatusInternalServerError, msgPaymentFailed), nil
	}

	b, err := booking.NewBooking(in.ListingID, in.GuestID, dates, totalCost)
	if err != nil {
		return c.refundAndFail(ctx, in, totalCost, http.StatusBadRequest, msgInvalidDates), nil
	}

	if err := c.bookings.Create(ctx, b); err != nil {
		code := http.StatusInternalServerError
		msg := msgBookingRefunded
		if infra.IsKind(err, infra.KindConflict) {
			code = http.StatusBadRequest
			msg = msgDatesUnavailable
		}
		return c.refundAndFail(ctx, in, totalCost, code, msg), nil
	}

	now := c.clk.Now()
	return &BookingResult{
		Code:    http.StatusOK,
		Success: true,
		Message: msgBookingSuccess,
		Booking: &queries.BookingView{
			ID:           b.ID(),
			ListingID:    b.ListingID(),
			GuestID:      b.GuestID(),
			CheckInDate:  dates.CheckIn(),
			CheckOutDate: dates.CheckOut(),
			TotalCost:    totalCost,
			Status:       string(b.StatusAt(now)),
			CreatedAt:    now,
		},
	}, nil
}

// refundAndFail credits back the exact debited amount. When even the refund
// fails there is nothing left to roll back automatically; the failure is
// logged with everything support needs and surfaced to the caller.
func (c *bookingCommandsImpl) refundAndFail(ctx context.Context, in CreateBookingInput, amount int64, code int, msg string) *BookingResult {
	if _, err := c.ledger.Credit(ctx, in.GuestID, amount); err != nil {
		slog.Error("refund after failed booking write failed",
			"guest_id", in.GuestID,
			"listing_id", in.ListingID,
			"amount", amount,
			"error", err.Error())
		return failedBooking(http.StatusInternalServerError, msgRefundFailed)
	}
	return failedBooking(code, msg)
}

func failedBooking(code int, msg string) *BookingResult {
	return &BookingResult{Code: code, Success: false, Message: msg}
}
