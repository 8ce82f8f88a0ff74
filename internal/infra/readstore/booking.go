package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `
	id, listing_id, guest_id, check_in_date, check_out_date, total_cost, created_at`

const findBookingByIDQuery = `
	SELECT` + bookingColumns + `
	FROM bookings
	WHERE id = $1`

const findBookingsByGuestQuery = `
	SELECT` + bookingColumns + `
	FROM bookings
	WHERE guest_id = $1
	ORDER BY check_in_date`

const findBookingsByListingQuery = `
	SELECT` + bookingColumns + `
	FROM bookings
	WHERE listing_id = $1
	ORDER BY check_in_date`

// Half-open ranges: a stay ending the day another starts is not an overlap.
const existsOverlappingBookingQuery = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE listing_id = $1
		  AND check_in_date < $3
		  AND check_out_date > $2
	)`

const findRangesEndingAfterQuery = `
	SELECT check_in_date, check_out_date
	FROM bookings
	WHERE listing_id = $1 AND check_out_date > $2
	ORDER BY check_in_date`

type BookingReadStore struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool, slogger: slog.Default()}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBooking(s.pool.QueryRow(ctx, findBookingByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingView, error) {
	return s.findMany(ctx, findBookingsByGuestQuery, guestID)
}

func (s *BookingReadStore) FindByListing(ctx context.Context, listingID uuid.UUID) ([]*queries.BookingView, error) {
	return s.findMany(ctx, findBookingsByListingQuery, listingID)
}

func (s *BookingReadStore) ExistsOverlapping(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, existsOverlappingBookingQuery, listingID, dates.CheckIn(), dates.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to check booking overlap", err)
	}
	return exists, nil
}

func (s *BookingReadStore) FindRangesEndingAfter(ctx context.Context, listingID uuid.UUID, after time.Time) ([]*queries.DateRangeView, error) {
	rows, err := s.pool.Query(ctx, findRangesEndingAfterQuery, listingID, after)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to query booked ranges", err)
	}
	defer rows.Close()

	var ranges []*queries.DateRangeView
	for rows.Next() {
		var r queries.DateRangeView
		if err := rows.Scan(&r.CheckInDate, &r.CheckOutDate); err != nil {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan booked range", err)
		}
		ranges = append(ranges, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read booked ranges", err)
	}
	return ranges, nil
}

func (s *BookingReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to query bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read bookings", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.ListingID, &v.GuestID,
		&v.CheckInDate, &v.CheckOutDate, &v.TotalCost, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
