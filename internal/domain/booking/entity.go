package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativeCost = errors.New("total cost cannot be negative")

// Booking references its listing and guest by id only; the owning services
// hold the full records. totalCost is a point-in-time snapshot taken by the
// orchestrator at creation and never recomputed, even if pricing changes.
type Booking struct {
	id        uuid.UUID
	listingID uuid.UUID
	guestID   uuid.UUID
	dates     DateRange
	totalCost int64
}

func NewBooking(listingID, guestID uuid.UUID, dates DateRange, totalCost int64) (*Booking, error) {
	if totalCost < 0 {
		return nil, ErrNegativeCost
	}

	return &Booking{
		id:        uuid.New(),
		listingID: listingID,
		guestID:   guestID,
		dates:     dates,
		totalCost: totalCost,
	}, nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ListingID() uuid.UUID { return b.listingID }
func (b *Booking) GuestID() uuid.UUID   { return b.guestID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) TotalCost() int64     { return b.totalCost }

// StatusAt derives the booking status from the stay dates. A booking is
// COMPLETED once its check-out date is no longer in the future.
func (b *Booking) StatusAt(now time.Time) Status {
	return DeriveStatus(b.dates.CheckOut(), now)
}

func DeriveStatus(checkOut, now time.Time) Status {
	if checkOut.After(now.UTC()) {
		return StatusUpcoming
	}
	return StatusCompleted
}
