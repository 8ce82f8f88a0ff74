package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	TargetType string    `json:"target_type"`
	TargetID   uuid.UUID `json:"target_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Rating     int32     `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByBookingAndTarget(ctx context.Context, bookingID uuid.UUID, targetType review.TargetType) (*ReviewView, error)
	FindByTarget(ctx context.Context, targetType review.TargetType, targetID uuid.UUID) ([]*ReviewView, error)
	AverageRatingForTarget(ctx context.Context, targetType review.TargetType, targetID uuid.UUID) (*float64, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	GetForBooking(ctx context.Context, bookingID uuid.UUID, targetType review.TargetType) (*ReviewView, error)
	ListForListing(ctx context.Context, listingID uuid.UUID) ([]*ReviewView, error)
	OverallRatingForListing(ctx context.Context, listingID uuid.UUID) (*float64, error)
	OverallRatingForHost(ctx context.Context, hostID uuid.UUID) (*float64, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReviewNotFound)
		}
		return nil, err
	}
	return view, nil
}

// GetForBooking returns nil without error when the review simply has not
// been written yet; a missing review is an ordinary state of a booking.
func (q *reviewQueriesImpl) GetForBooking(ctx context.Context, bookingID uuid.UUID, targetType review.TargetType) (*ReviewView, error) {
	view, err := q.store.FindByBookingAndTarget(ctx, bookingID, targetType)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListForListing(ctx context.Context, listingID uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindByTarget(ctx, review.TargetListing, listingID)
}

// OverallRatingForListing returns nil when no reviews exist yet so the
// caller can distinguish "unrated" from a zero rating.
func (q *reviewQueriesImpl) OverallRatingForListing(ctx context.Context, listingID uuid.UUID) (*float64, error) {
	return q.store.AverageRatingForTarget(ctx, review.TargetListing, listingID)
}

func (q *reviewQueriesImpl) OverallRatingForHost(ctx context.Context, hostID uuid.UUID) (*float64, error) {
	return q.store.AverageRatingForTarget(ctx, review.TargetHost, hostID)
}
