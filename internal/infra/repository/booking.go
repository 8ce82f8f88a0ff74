package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The insert carries its own overlap guard: the row only lands when no
// existing booking shares a night with the requested half-open range.
// The exclusion constraint on bookings backstops the race where two
// transactions pass the guard concurrently.
const createBookingQuery = `
	INSERT INTO bookings (id, listing_id, guest_id, check_in_date, check_out_date, total_cost)
	SELECT $1, $2, $3, $4, $5, $6
	WHERE NOT EXISTS (
		SELECT 1 FROM bookings
		WHERE listing_id = $2
		  AND check_in_date < $5
		  AND check_out_date > $4
	)
	RETURNING created_at`

type BookingRepository struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool, slogger: slog.Default()}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row := r.pool.QueryRow(ctx, createBookingQuery,
		b.ID(), b.ListingID(), b.GuestID(),
		b.Dates().CheckIn(), b.Dates().CheckOut(), b.TotalCost(),
	)

	var createdAt time.Time
	if err := row.Scan(&createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isExclusionViolation(err) {
			return infra.WrapRepoErr(r.slogger, infra.KindConflict, "listing already booked for the requested dates", err)
		}
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to create booking", err)
	}
	return nil
}

const pgErrCodeExclusionViolation = "23P01"

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation
}
