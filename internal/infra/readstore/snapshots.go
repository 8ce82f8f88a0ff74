package readstore

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/infra"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Command-side snapshot readers. They deliberately select only what the
// write path needs instead of reusing the full read-side views.

const findListingSnapshotQuery = `
	SELECT id, host_id, cost_per_night
	FROM listings
	WHERE id = $1`

const findBookingSnapshotQuery = `
	SELECT id, listing_id, guest_id, check_in_date, check_out_date, total_cost
	FROM bookings
	WHERE id = $1`

type ListingSnapshots struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewListingSnapshots(pool *pgxpool.Pool) *ListingSnapshots {
	return &ListingSnapshots{pool: pool, slogger: slog.Default()}
}

func (s *ListingSnapshots) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.ListingSnapshot, error) {
	var snap commands.ListingSnapshot
	err := s.pool.QueryRow(ctx, findListingSnapshotQuery, id).Scan(
		&snap.ID, &snap.HostID, &snap.CostPerNight,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "listing not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to snapshot listing", err)
	}
	return &snap, nil
}

type BookingSnapshots struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewBookingSnapshots(pool *pgxpool.Pool) *BookingSnapshots {
	return &BookingSnapshots{pool: pool, slogger: slog.Default()}
}

func (s *BookingSnapshots) SnapshotByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var snap commands.BookingSnapshot
	err := s.pool.QueryRow(ctx, findBookingSnapshotQuery, id).Scan(
		&snap.ID, &snap.ListingID, &snap.GuestID,
		&snap.CheckInDate, &snap.CheckOutDate, &snap.TotalCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to snapshot booking", err)
	}
	return &snap, nil
}
