package readstore

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `
	id, booking_id, target_type, target_id, author_id, rating, text, created_at`

const findReviewByIDQuery = `
	SELECT` + reviewColumns + `
	FROM reviews
	WHERE id = $1`

const findReviewByBookingAndTargetQuery = `
	SELECT` + reviewColumns + `
	FROM reviews
	WHERE booking_id = $1 AND target_type = $2`

const findReviewsByTargetQuery = `
	SELECT` + reviewColumns + `
	FROM reviews
	WHERE target_type = $1 AND target_id = $2
	ORDER BY created_at DESC`

const averageRatingForTargetQuery = `
	SELECT AVG(rating)::float8
	FROM reviews
	WHERE target_type = $1 AND target_id = $2`

type ReviewReadStore struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewReviewReadStore(pool *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{pool: pool, slogger: slog.Default()}
}

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	view, err := scanReview(s.pool.QueryRow(ctx, findReviewByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "review not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find review", err)
	}
	return view, nil
}

func (s *ReviewReadStore) FindByBookingAndTarget(ctx context.Context, bookingID uuid.UUID, targetType review.TargetType) (*queries.ReviewView, error) {
	view, err := scanReview(s.pool.QueryRow(ctx, findReviewByBookingAndTargetQuery, bookingID, string(targetType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "review not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find review", err)
	}
	return view, nil
}

func (s *ReviewReadStore) FindByTarget(ctx context.Context, targetType review.TargetType, targetID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.pool.Query(ctx, findReviewsByTargetQuery, string(targetType), targetID)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to query reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReview(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan review", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read reviews", err)
	}
	return views, nil
}

// AverageRatingForTarget returns nil when no review exists for the target.
func (s *ReviewReadStore) AverageRatingForTarget(ctx context.Context, targetType review.TargetType, targetID uuid.UUID) (*float64, error) {
	var avg *float64
	err := s.pool.QueryRow(ctx, averageRatingForTargetQuery, string(targetType), targetID).Scan(&avg)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to compute average rating", err)
	}
	return avg, nil
}

func scanReview(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(
		&v.ID, &v.BookingID, &v.TargetType, &v.TargetID,
		&v.AuthorID, &v.Rating, &v.Text, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
