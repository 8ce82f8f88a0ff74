package repository

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertReviewQuery = `
	INSERT INTO reviews (id, booking_id, target_type, target_id, author_id, rating, text)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

type ReviewRepository struct {
	pool    *pgxpool.Pool
	unit    uow.UnitOfWork
	slogger *slog.Logger
}

func NewReviewRepository(pool *pgxpool.Pool, unit uow.UnitOfWork) *ReviewRepository {
	return &ReviewRepository{pool: pool, unit: unit, slogger: slog.Default()}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	return r.insert(ctx, r.pool, rv)
}

// CreatePair writes the host review and the location review of one booking
// atomically; a guest never ends up with only half their review submission.
func (r *ReviewRepository) CreatePair(ctx context.Context, hostReview, locationReview *review.Review) error {
	return r.unit.Within(ctx, func(ctx context.Context, q db.Queryer) error {
		if err := r.insert(ctx, q, hostReview); err != nil {
			return err
		}
		return r.insert(ctx, q, locationReview)
	})
}

func (r *ReviewRepository) insert(ctx context.Context, q db.Queryer, rv *review.Review) error {
	_, err := q.Exec(ctx, insertReviewQuery,
		rv.ID(), rv.BookingID(), string(rv.TargetType()), rv.TargetID(),
		rv.AuthorID(), rv.Rating().Value(), rv.Text().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr(r.slogger, infra.KindDuplicateKey, "review already exists for booking and target", err)
		}
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to create review", err)
	}
	return nil
}
