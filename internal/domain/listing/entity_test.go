//go:build unit

package listing_test

import (
	"testing"

	"stayhub/internal/domain/listing"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestNewListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "The Nostromo", actual.Title())
		assert.Equal(t, listing.LocationSpaceship, actual.LocationType())
		assert.Len(t, actual.AmenityIDs(), 2)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("") },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("   ") },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "zero cost per night",
				mutate: func(b *builder.ListingBuilder) { b.WithCostPerNight(0) },
				errIs:  listing.ErrNonPositiveCost,
			},
			{
				name:   "negative cost per night",
				mutate: func(b *builder.ListingBuilder) { b.WithCostPerNight(-10) },
				errIs:  listing.ErrNonPositiveCost,
			},
			{
				name:   "zero beds",
				mutate: func(b *builder.ListingBuilder) { b.WithNumOfBeds(0) },
				errIs:  listing.ErrNonPositiveBeds,
			},
			{
				name:   "unknown location type",
				mutate: func(b *builder.ListingBuilder) { b.WithLocationType("TREEHOUSE") },
				errIs:  listing.ErrInvalidLocationType,
			},
			{
				name:   "no amenities",
				mutate: func(b *builder.ListingBuilder) { b.AmenityIDs = nil },
				errIs:  listing.ErrNoAmenities,
			},
			{
				name: "duplicate amenities",
				mutate: func(b *builder.ListingBuilder) {
					id := uuid.New()
					b.WithAmenityIDs(id, id)
				},
				errIs: listing.ErrDuplicateAmenities,
			},
		})
	})

	t.Run("title trimming", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().WithTitle("  Dune Palace  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Dune Palace", actual.Title())
	})
}

func TestTotalCost(t *testing.T) {
	cases := []struct {
		name         string
		costPerNight int64
		nights       int
		expected     int64
		errIs        error
	}{
		{name: "multi-night stay", costPerNight: 120, nights: 4, expected: 480},
		{name: "single night", costPerNight: 99, nights: 1, expected: 99},
		{name: "zero nights", costPerNight: 120, nights: 0, expected: 0},
		{name: "negative nights", costPerNight: 120, nights: -1, errIs: listing.ErrNegativeNights},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			total, err := listing.TotalCost(c.costPerNight, c.nights)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, total)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
