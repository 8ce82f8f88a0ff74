package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"
	"stayhub/internal/domain/review"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ListingSnapshot struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	CostPerNight int64
}

type BookingSnapshot struct {
	ID           uuid.UUID
	ListingID    uuid.UUID
	GuestID      uuid.UUID
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalCost    int64
}

// ListingReader is the listings-service port the orchestrator quotes from.
type ListingReader interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
}

type BookingReader interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

// FundsLedger is the payments-service port. Both calls are atomic and
// return the resulting balance.
type FundsLedger interface {
	Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
}

type BookingWriter interface {
	Create(ctx context.Context, b *booking.Booking) error
}

type ListingWriter interface {
	Create(ctx context.Context, l *listing.Listing) error
	Update(ctx context.Context, l *listing.Listing) error
}

type ReviewWriter interface {
	Create(ctx context.Context, rv *review.Review) error
	CreatePair(ctx context.Context, hostReview, locationReview *review.Review) error
}
