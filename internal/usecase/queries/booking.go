package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	GuestID      uuid.UUID `json:"guest_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	TotalCost    int64     `json:"total_cost"`
	// Status is derived from the dates at read time, never stored.
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DateRangeView struct {
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingView, error)
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]*BookingView, error)
	ExistsOverlapping(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (bool, error)
	FindRangesEndingAfter(ctx context.Context, listingID uuid.UUID, after time.Time) ([]*DateRangeView, error)
}

// ListingOwnership is the listings-service port used to check that the
// caller hosts the listing whose bookings are being read.
type ListingOwnership interface {
	IsOwnedBy(ctx context.Context, listingID, hostID uuid.UUID) (bool, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForGuest(ctx context.Context, guestID uuid.UUID, actorRole string, status *booking.Status) ([]*BookingView, error)
	ListForListing(ctx context.Context, listingID, actorID uuid.UUID, actorRole string, status *booking.Status) ([]*BookingView, error)
	IsListingAvailable(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (bool, error)
	CurrentlyBookedRanges(ctx context.Context, listingID uuid.UUID) ([]*DateRangeView, error)
}

type bookingQueriesImpl struct {
	store     BookingReadStore
	ownership ListingOwnership
	clk       clock.Clock
}

func NewBookingQueries(store BookingReadStore, ownership ListingOwnership, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, ownership: ownership, clk: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	q.deriveStatus(view)
	return view, nil
}

func (q *bookingQueriesImpl) ListForGuest(ctx context.Context, guestID uuid.UUID, actorRole string, status *booking.Status) ([]*BookingView, error) {
	if actorRole != RoleGuest {
		return nil, ErrForbiddenRole
	}
	views, err := q.store.FindByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return q.deriveAndFilter(views, status), nil
}

func (q *bookingQueriesImpl) ListForListing(ctx context.Context, listingID, actorID uuid.UUID, actorRole string, status *booking.Status) ([]*BookingView, error) {
	if actorRole != RoleHost {
		return nil, ErrForbiddenRole
	}
	owned, err := q.ownership.IsOwnedBy(ctx, listingID, actorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrNotOwnedByHost
	}
	views, err := q.store.FindByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return q.deriveAndFilter(views, status), nil
}

// IsListingAvailable reports whether no existing booking overlaps the
// half-open range. Touching ranges (one ends the day the other starts)
// do not conflict.
func (q *bookingQueriesImpl) IsListingAvailable(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (bool, error) {
	taken, err := q.store.ExistsOverlapping(ctx, listingID, dates)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (q *bookingQueriesImpl) CurrentlyBookedRanges(ctx context.Context, listingID uuid.UUID) ([]*DateRangeView, error) {
	return q.store.FindRangesEndingAfter(ctx, listingID, clock.Today(q.clk))
}

func (q *bookingQueriesImpl) deriveStatus(view *BookingView) {
	view.Status = string(booking.DeriveStatus(view.CheckOutDate, q.clk.Now()))
}

func (q *bookingQueriesImpl) deriveAndFilter(views []*BookingView, status *booking.Status) []*BookingView {
	filtered := make([]*BookingView, 0, len(views))
	for _, view := range views {
		q.deriveStatus(view)
		if status != nil && view.Status != string(*status) {
			continue
		}
		filtered = append(filtered, view)
	}
	return filtered
}
