//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewMocks struct {
	bookings *commandsmock.MockBookingReader
	listings *commandsmock.MockListingReader
	writer   *commandsmock.MockReviewWriter
}

func newReviewCommands(t *testing.T, now time.Time) (commands.ReviewCommands, reviewMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := reviewMocks{
		bookings: commandsmock.NewMockBookingReader(ctrl),
		listings: commandsmock.NewMockListingReader(ctrl),
		writer:   commandsmock.NewMockReviewWriter(ctrl),
	}
	uc := commands.NewReviewCommands(m.bookings, m.listings, m.writer, clock.NewMockClock(now))
	return uc, m
}

// expectStay wires the booking and listing lookups the review path performs.
func expectStay(ctx context.Context, m reviewMocks, bookingID uuid.UUID, stay *commands.BookingSnapshot, hostID uuid.UUID) {
	listingSnapshot := builder.NewListingBuilder().WithHostID(hostID).BuildSnapshot()
	listingSnapshot.ID = stay.ListingID

	m.bookings.EXPECT().SnapshotByID(ctx, bookingID).Return(stay, nil)
	m.listings.EXPECT().SnapshotByID(ctx, stay.ListingID).Return(listingSnapshot, nil)
}

func TestSubmitGuestReview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("host reviews the guest of a completed stay", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)
		m.writer.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		in := builder.NewReviewBuilder().WithRating(4).WithText("A tidy, considerate guest.").BuildInput()
		result, err := uc.SubmitGuestReview(ctx, bookingID, hostID, queries.RoleHost, in)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusOK, result.Code)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully submitted review", result.Message)
		require.NotNil(t, result.GuestReview)
		assert.Equal(t, bookingID, result.GuestReview.BookingID)
		assert.Equal(t, string(review.TargetGuest), result.GuestReview.TargetType)
		assert.Equal(t, stay.GuestID, result.GuestReview.TargetID)
		assert.Equal(t, hostID, result.GuestReview.AuthorID)
		assert.Equal(t, int32(4), result.GuestReview.Rating)
		assert.Equal(t, "A tidy, considerate guest.", result.GuestReview.Text)
	})

	t.Run("guest callers are rejected before any lookup", func(t *testing.T) {
		uc, _ := newReviewCommands(t, now)

		in := builder.NewReviewBuilder().BuildInput()
		result, err := uc.SubmitGuestReview(ctx, uuid.New(), uuid.New(), queries.RoleGuest, in)
		require.ErrorIs(t, err, queries.ErrForbiddenRole)
		assert.Nil(t, result)
	})

	t.Run("unknown booking is a hard error", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		m.bookings.EXPECT().
			SnapshotByID(ctx, bookingID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		result, err := uc.SubmitGuestReview(ctx, bookingID, uuid.New(), queries.RoleHost, builder.NewReviewBuilder().BuildInput())
		require.ErrorIs(t, err, commands.ErrReviewBookingNotFound)
		assert.Nil(t, result)
	})

	t.Run("a host who does not own the listing is not a participant", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, uuid.New())

		result, err := uc.SubmitGuestReview(ctx, bookingID, uuid.New(), queries.RoleHost, builder.NewReviewBuilder().BuildInput())
		require.ErrorIs(t, err, commands.ErrNotBookingParticipant)
		assert.Nil(t, result)
	})

	t.Run("an upcoming stay fails the payload without writing", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().WithDates("2026-10-01", "2026-10-05").BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)

		result, err := uc.SubmitGuestReview(ctx, bookingID, hostID, queries.RoleHost, builder.NewReviewBuilder().BuildInput())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "You can only review a stay after check-out.", result.Message)
		assert.Nil(t, result.GuestReview)
	})

	t.Run("an out-of-range rating fails the payload", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)

		in := builder.NewReviewBuilder().WithRating(0).BuildInput()
		result, err := uc.SubmitGuestReview(ctx, bookingID, hostID, queries.RoleHost, in)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, review.ErrInvalidRating.Error(), result.Message)
	})

	t.Run("a second review of the same stay fails the payload", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)
		m.writer.EXPECT().
			Create(ctx, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		result, err := uc.SubmitGuestReview(ctx, bookingID, hostID, queries.RoleHost, builder.NewReviewBuilder().BuildInput())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "You have already reviewed this stay.", result.Message)
	})

	t.Run("unexpected persist failures surface as errors", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)
		m.writer.EXPECT().Create(ctx, gomock.Any()).Return(errs.New("connection reset"))

		result, err := uc.SubmitGuestReview(ctx, bookingID, hostID, queries.RoleHost, builder.NewReviewBuilder().BuildInput())
		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSubmitHostAndLocationReviews(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("guest reviews host and listing together after check-out", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		hostID := uuid.New()
		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, hostID)
		m.writer.EXPECT().CreatePair(ctx, gomock.Any(), gomock.Any()).Return(nil)

		host := builder.NewReviewBuilder().WithRating(5).WithText("A wonderful, attentive host.").BuildInput()
		location := builder.NewReviewBuilder().WithRating(3).WithText("Cozy, though the heating struggled.").BuildInput()

		result, err := uc.SubmitHostAndLocationReviews(ctx, bookingID, stay.GuestID, queries.RoleGuest, host, location)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusOK, result.Code)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully submitted reviews", result.Message)

		require.NotNil(t, result.HostReview)
		assert.Equal(t, string(review.TargetHost), result.HostReview.TargetType)
		assert.Equal(t, hostID, result.HostReview.TargetID)
		assert.Equal(t, stay.GuestID, result.HostReview.AuthorID)
		assert.Equal(t, int32(5), result.HostReview.Rating)

		require.NotNil(t, result.LocationReview)
		assert.Equal(t, string(review.TargetListing), result.LocationReview.TargetType)
		assert.Equal(t, stay.ListingID, result.LocationReview.TargetID)
		assert.Equal(t, int32(3), result.LocationReview.Rating)
	})

	t.Run("host callers are rejected before any lookup", func(t *testing.T) {
		uc, _ := newReviewCommands(t, now)

		in := builder.NewReviewBuilder().BuildInput()
		result, err := uc.SubmitHostAndLocationReviews(ctx, uuid.New(), uuid.New(), queries.RoleHost, in, in)
		require.ErrorIs(t, err, queries.ErrForbiddenRole)
		assert.Nil(t, result)
	})

	t.Run("a guest who did not book the stay is not a participant", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, uuid.New())

		in := builder.NewReviewBuilder().BuildInput()
		result, err := uc.SubmitHostAndLocationReviews(ctx, bookingID, uuid.New(), queries.RoleGuest, in, in)
		require.ErrorIs(t, err, commands.ErrNotBookingParticipant)
		assert.Nil(t, result)
	})

	t.Run("an upcoming stay fails the payload without writing", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().WithDates("2026-10-01", "2026-10-05").BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, uuid.New())

		in := builder.NewReviewBuilder().BuildInput()
		result, err := uc.SubmitHostAndLocationReviews(ctx, bookingID, stay.GuestID, queries.RoleGuest, in, in)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "You can only review a stay after check-out.", result.Message)
	})

	t.Run("an invalid location rating fails the payload before any write", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, uuid.New())

		host := builder.NewReviewBuilder().BuildInput()
		location := builder.NewReviewBuilder().WithRating(6).BuildInput()

		result, err := uc.SubmitHostAndLocationReviews(ctx, bookingID, stay.GuestID, queries.RoleGuest, host, location)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, review.ErrInvalidRating.Error(), result.Message)
	})

	t.Run("an already reviewed stay fails the payload for the pair", func(t *testing.T) {
		uc, m := newReviewCommands(t, now)

		bookingID := uuid.New()
		stay := builder.NewBookingBuilder().AsCompletedStay().BuildSnapshot()
		expectStay(ctx, m, bookingID, stay, uuid.New())
		m.writer.EXPECT().
			CreatePair(ctx, gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		in := builder.NewReviewBuilder().BuildInput()
		result, err := uc.SubmitHostAndLocationReviews(ctx, bookingID, stay.GuestID, queries.RoleGuest, in, in)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "You have already reviewed this stay.", result.Message)
	})
}
