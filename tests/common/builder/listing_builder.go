//go:build unit || e2e

package builder

import (
	"time"

	domlisting "stayhub/internal/domain/listing"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingBuilder struct {
	HostID         uuid.UUID
	Title          string
	Description    string
	PhotoThumbnail string
	CostPerNight   int64
	NumOfBeds      int32
	LocationType   string
	Latitude       float64
	Longitude      float64
	AmenityIDs     []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		HostID:         uuid.New(),
		Title:          "The Nostromo",
		Description:    "A quiet corner of deep space, all to yourself.",
		PhotoThumbnail: "https://example.com/nostromo.jpg",
		CostPerNight:   120,
		NumOfBeds:      2,
		LocationType:   "SPACESHIP",
		Latitude:       28.3922,
		Longitude:      -80.6077,
		AmenityIDs:     []uuid.UUID{uuid.New(), uuid.New()},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Clone copies the builder so a test can derive a second listing from the
// first without sharing the amenity slice.
func (b *ListingBuilder) Clone() *ListingBuilder {
	var clone ListingBuilder
	if err := copier.CopyWithOption(&clone, b, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &clone
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	locationType := domlisting.LocationType(b.LocationType)
	return domlisting.NewListing(
		b.HostID,
		b.Title, b.Description, b.PhotoThumbnail,
		b.CostPerNight,
		b.NumOfBeds,
		locationType,
		domlisting.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude},
		b.AmenityIDs,
	)
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:          b.Title,
		Description:    b.Description,
		PhotoThumbnail: b.PhotoThumbnail,
		CostPerNight:   b.CostPerNight,
		NumOfBeds:      b.NumOfBeds,
		LocationType:   b.LocationType,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		AmenityIDs:     b.AmenityIDs,
	}
}

func (b *ListingBuilder) BuildCreateInput() commands.CreateListingInput {
	return b.BuildCreateRequestDTO().ToInput()
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	amenities := make([]*queries.AmenityView, 0, len(b.AmenityIDs))
	for _, id := range b.AmenityIDs {
		amenities = append(amenities, &queries.AmenityView{ID: id, Category: "Accessibility and safety", Name: "Oxygen"})
	}
	return &queries.ListingView{
		ID:             uuid.New(),
		HostID:         b.HostID,
		Title:          b.Title,
		Description:    b.Description,
		PhotoThumbnail: b.PhotoThumbnail,
		CostPerNight:   b.CostPerNight,
		NumOfBeds:      b.NumOfBeds,
		LocationType:   b.LocationType,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		Amenities:      amenities,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ListingBuilder) BuildSnapshot() *commands.ListingSnapshot {
	return &commands.ListingSnapshot{
		ID:           uuid.New(),
		HostID:       b.HostID,
		CostPerNight: b.CostPerNight,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithHostID(hostID uuid.UUID) *ListingBuilder {
	b.HostID = hostID
	return b
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.Title = title
	return b
}

func (b *ListingBuilder) WithCostPerNight(cost int64) *ListingBuilder {
	b.CostPerNight = cost
	return b
}

func (b *ListingBuilder) WithNumOfBeds(beds int32) *ListingBuilder {
	b.NumOfBeds = beds
	return b
}

func (b *ListingBuilder) WithLocationType(locationType string) *ListingBuilder {
	b.LocationType = locationType
	return b
}

func (b *ListingBuilder) WithAmenityIDs(ids ...uuid.UUID) *ListingBuilder {
	b.AmenityIDs = ids
	return b
}
