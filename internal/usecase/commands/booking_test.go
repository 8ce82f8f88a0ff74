//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/wallet"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sagaMocks struct {
	listings *commandsmock.MockListingReader
	ledger   *commandsmock.MockFundsLedger
	bookings *commandsmock.MockBookingWriter
}

func newBookingCommands(t *testing.T, now time.Time) (commands.BookingCommands, sagaMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := sagaMocks{
		listings: commandsmock.NewMockListingReader(ctrl),
		ledger:   commandsmock.NewMockFundsLedger(ctrl),
		bookings: commandsmock.NewMockBookingWriter(ctrl),
	}
	uc := commands.NewBookingCommands(m.listings, m.ledger, m.bookings, clock.NewMockClock(now))
	return uc, m
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("books the stay and charges cost per night times nights", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder().WithDates("2026-10-01", "2026-10-05")
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()
		snapshot.ID = b.ListingID

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().Debit(ctx, b.GuestID, int64(480)).Return(int64(20), nil)
		m.bookings.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusOK, result.Code)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully booked!", result.Message)
		require.NotNil(t, result.Booking)
		assert.Equal(t, b.ListingID, result.Booking.ListingID)
		assert.Equal(t, b.GuestID, result.Booking.GuestID)
		assert.Equal(t, int64(480), result.Booking.TotalCost)
		assert.Equal(t, "UPCOMING", result.Booking.Status)
	})

	t.Run("rejects non-guest callers before touching any service", func(t *testing.T) {
		uc, _ := newBookingCommands(t, now)

		in := builder.NewBookingBuilder().BuildCreateInput(queries.RoleHost)

		result, err := uc.CreateBooking(ctx, in)
		require.ErrorIs(t, err, commands.ErrOnlyGuestsCanBook)
		assert.Nil(t, result)
	})

	t.Run("invalid dates fail the payload before any funds move", func(t *testing.T) {
		uc, _ := newBookingCommands(t, now)

		in := builder.NewBookingBuilder().
			WithDates("2026-10-05", "2026-10-01").
			BuildCreateInput(queries.RoleGuest)

		result, err := uc.CreateBooking(ctx, in)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "Check-out date must be after check-in date.", result.Message)
		assert.Nil(t, result.Booking)
	})

	t.Run("unknown listing is a hard error", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		m.listings.EXPECT().
			SnapshotByID(ctx, b.ListingID).
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.ErrorIs(t, err, commands.ErrBookingListingNotFound)
		assert.Nil(t, result)
	})

	t.Run("insufficient funds fail the payload without writing a booking", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().
			Debit(ctx, b.GuestID, int64(480)).
			Return(int64(0), wallet.ErrInsufficientFunds)

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "We couldn't complete your request because your funds are insufficient.", result.Message)
	})

	t.Run("unexpected debit failure fails the payload with a payment message", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().
			Debit(ctx, b.GuestID, int64(480)).
			Return(int64(0), errs.New("wallet service down"))

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusInternalServerError, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "We couldn't process your payment. Please try again.", result.Message)
	})

	t.Run("overlapping stay refunds the debit and reports the dates as unavailable", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().Debit(ctx, b.GuestID, int64(480)).Return(int64(20), nil)
		m.bookings.EXPECT().
			Create(ctx, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindConflict})
		m.ledger.EXPECT().Credit(ctx, b.GuestID, int64(480)).Return(int64(500), nil)

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusBadRequest, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "The listing is unavailable for the selected dates.", result.Message)
	})

	t.Run("other persist failures refund the debit and report the refund", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().Debit(ctx, b.GuestID, int64(480)).Return(int64(20), nil)
		m.bookings.EXPECT().
			Create(ctx, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDBFailure})
		m.ledger.EXPECT().Credit(ctx, b.GuestID, int64(480)).Return(int64(500), nil)

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusInternalServerError, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "We couldn't complete your booking. Your payment has been refunded.", result.Message)
	})

	t.Run("failed refund is surfaced for manual follow-up", func(t *testing.T) {
		uc, m := newBookingCommands(t, now)

		b := builder.NewBookingBuilder()
		snapshot := builder.NewListingBuilder().WithCostPerNight(120).BuildSnapshot()

		m.listings.EXPECT().SnapshotByID(ctx, b.ListingID).Return(snapshot, nil)
		m.ledger.EXPECT().Debit(ctx, b.GuestID, int64(480)).Return(int64(20), nil)
		m.bookings.EXPECT().
			Create(ctx, gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindConflict})
		m.ledger.EXPECT().
			Credit(ctx, b.GuestID, int64(480)).
			Return(int64(0), errs.New("wallet service down"))

		result, err := uc.CreateBooking(ctx, b.BuildCreateInput(queries.RoleGuest))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, http.StatusInternalServerError, result.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "We couldn't complete your booking or refund your payment. Please contact support.", result.Message)
	})
}
