package commands

import (
	"context"
	"net/http"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrReviewBookingNotFound = errs.New("booking not found")
	ErrNotBookingParticipant = errs.New("reviewer is not a participant of the booking")
)

const (
	msgReviewSubmitted     = "Successfully submitted review"
	msgReviewsSubmitted    = "Successfully submitted reviews"
	msgStayNotCompleted    = "You can only review a stay after check-out."
	msgReviewAlreadyExists = "You have already reviewed this stay."
)

type ReviewInput struct {
	Rating int
	Text   string
}

type GuestReviewResult struct {
	Code        int
	Success     bool
	Message     string
	GuestReview *queries.ReviewView
}

type StayReviewsResult struct {
	Code           int
	Success        bool
	Message        string
	HostReview     *queries.ReviewView
	LocationReview *queries.ReviewView
}

type ReviewCommands interface {
	SubmitGuestReview(ctx context.Context, bookingID, authorID uuid.UUID, actorRole string, in ReviewInput) (*GuestReviewResult, error)
	SubmitHostAndLocationReviews(ctx context.Context, bookingID, authorID uuid.UUID, actorRole string, host, location ReviewInput) (*StayReviewsResult, error)
}

type reviewCommandsImpl struct {
	bookings BookingReader
	listings ListingReader
	writer   ReviewWriter
	clk      clock.Clock
}

func NewReviewCommands(bookings BookingReader, listings ListingReader, writer ReviewWriter, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		bookings: bookings,
		listings: listings,
		writer:   writer,
		clk:      clk,
	}
}

// SubmitGuestReview lets the host of a completed stay review its guest.
func (c *reviewCommandsImpl) SubmitGuestReview(ctx context.Context, bookingID, authorID uuid.UUID, actorRole string, in ReviewInput) (*GuestReviewResult, error) {
	if actorRole != queries.RoleHost {
		return nil, queries.ErrForbiddenRole
	}

	stay, hostID, err := c.loadStay(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if hostID != authorID {
		return nil, errs.Wrapf(ErrNotBookingParticipant, "host %s does not host booking %s", authorID, bookingID)
	}

	if !c.stayCompleted(stay) {
		return &GuestReviewResult{Code: http.StatusBadRequest, Success: false, Message: msgStayNotCompleted}, nil
	}

	rv, err := review.NewReview(bookingID, review.TargetGuest, stay.GuestID, authorID, in.Rating, in.Text)
	if err != nil {
		return &GuestReviewResult{Code: http.StatusBadRequest, Success: false, Message: err.Error()}, nil
	}

	if err := c.writer.Create(ctx, rv); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return &GuestReviewResult{Code: http.StatusBadRequest, Success: false, Message: msgReviewAlreadyExists}, nil
		}
		return nil, errs.Wrap(err, "failed to create guest review")
	}

	return &GuestReviewResult{
		Code:        http.StatusOK,
		Success:     true,
		Message:     msgReviewSubmitted,
		GuestReview: c.toView(rv),
	}, nil
}

// SubmitHostAndLocationReviews lets the guest of a completed stay review
// the host and the listing together. Both rows land atomically.
func (c *reviewCommandsImpl) SubmitHostAndLocationReviews(ctx context.Context, bookingID, authorID uuid.UUID, actorRole string, host, location ReviewInput) (*StayReviewsResult, error) {
	if actorRole != queries.RoleGuest {
		return nil, queries.ErrForbiddenRole
	}

	stay, hostID, err := c.loadStay(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if stay.GuestID != authorID {
		return nil, errs.Wrapf(ErrNotBookingParticipant, "guest %s did not book %s", authorID, bookingID)
	}

	if !c.stayCompleted(stay) {
		return &StayReviewsResult{Code: http.StatusBadRequest, Success: false, Message: msgStayNotCompleted}, nil
	}

	hostReview, err := review.NewReview(bookingID, review.TargetHost, hostID, authorID, host.Rating, host.Text)
	if err != nil {
		return &StayReviewsResult{Code: http.StatusBadRequest, Success: false, Message: err.Error()}, nil
	}
	locationReview, err := review.NewReview(bookingID, review.TargetListing, stay.ListingID, authorID, location.Rating, location.Text)
	if err != nil {
		return &StayReviewsResult{Code: http.StatusBadRequest, Success: false, Message: err.Error()}, nil
	}

	if err := c.writer.CreatePair(ctx, hostReview, locationReview); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return &StayReviewsResult{Code: http.StatusBadRequest, Success: false, Message: msgReviewAlreadyExists}, nil
		}
		return nil, errs.Wrap(err, "failed to create stay reviews")
	}

	return &StayReviewsResult{
		Code:           http.StatusOK,
		Success:        true,
		Message:        msgReviewsSubmitted,
		HostReview:     c.toView(hostReview),
		LocationReview: c.toView(locationReview),
	}, nil
}

func (c *reviewCommandsImpl) loadStay(ctx context.Context, bookingID uuid.UUID) (*BookingSnapshot, uuid.UUID, error) {
	stay, err := c.bookings.SnapshotByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, uuid.Nil, errs.Mark(err, ErrReviewBookingNotFound)
		}
		return nil, uuid.Nil, errs.Wrap(err, "failed to load booking")
	}

	listingSnapshot, err := c.listings.SnapshotByID(ctx, stay.ListingID)
	if err != nil {
		return nil, uuid.Nil, errs.Wrap(err, "failed to load listing for booking")
	}
	return stay, listingSnapshot.HostID, nil
}

func (c *reviewCommandsImpl) stayCompleted(stay *BookingSnapshot) bool {
	return booking.DeriveStatus(stay.CheckOutDate, c.clk.Now()) == booking.StatusCompleted
}

func (c *reviewCommandsImpl) toView(rv *review.Review) *queries.ReviewView {
	return &queries.ReviewView{
		ID:         rv.ID(),
		BookingID:  rv.BookingID(),
		TargetType: string(rv.TargetType()),
		TargetID:   rv.TargetID(),
		AuthorID:   rv.AuthorID(),
		Rating:     int32(rv.Rating().Value()),
		Text:       rv.Text().String(),
		CreatedAt:  c.clk.Now(),
	}
}
