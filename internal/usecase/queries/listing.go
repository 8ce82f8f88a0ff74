package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	domlisting "stayhub/internal/domain/listing"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound = errs.New("listing not found")
	ErrInvalidCriteria = errs.New("invalid search criteria")
)

type AmenityView struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
}

type ListingView struct {
	ID             uuid.UUID      `json:"id"`
	HostID         uuid.UUID      `json:"host_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	PhotoThumbnail string         `json:"photo_thumbnail"`
	CostPerNight   int64          `json:"cost_per_night"`
	NumOfBeds      int32          `json:"num_of_beds"`
	LocationType   string         `json:"location_type"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Amenities      []*AmenityView `json:"amenities"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type CoordinatesView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type QuoteView struct {
	TotalCost    int64 `json:"total_cost"`
	CostPerNight int64 `json:"cost_per_night"`
	Nights       int   `json:"nights"`
}

type SearchCriteria struct {
	NumOfBeds *int32
	SortBy    domlisting.SortBy
	Paging    Paging
	// Dates is optional; when nil, availability is not consulted at all.
	Dates *booking.DateRange
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	FindFeatured(ctx context.Context, limit int32) ([]*ListingView, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*ListingView, error)
	SearchPage(ctx context.Context, numOfBeds *int32, sortBy domlisting.SortBy, limit, offset int32) ([]*ListingView, error)
	FindAllAmenities(ctx context.Context) ([]*AmenityView, error)
}

// ListingAvailability is the bookings-service port the search composition
// uses to drop candidates whose date range is already taken. The listing
// directory never reads the booking store itself.
type ListingAvailability interface {
	IsListingAvailable(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (bool, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	GetFeatured(ctx context.Context) ([]*ListingView, error)
	ListForHost(ctx context.Context, hostID uuid.UUID, actorRole string) ([]*ListingView, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*ListingView, error)
	GetTotalCost(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (*QuoteView, error)
	GetAllAmenities(ctx context.Context) ([]*AmenityView, error)
	GetCoordinates(ctx context.Context, listingID uuid.UUID) (*CoordinatesView, error)
}

type listingQueriesImpl struct {
	store        ListingReadStore
	availability ListingAvailability
	catalog      config.CatalogConfig
}

func NewListingQueries(store ListingReadStore, availability ListingAvailability, catalog config.CatalogConfig) ListingQueries {
	return &listingQueriesImpl{
		store:        store,
		availability: availability,
		catalog:      catalog,
	}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *listingQueriesImpl) GetFeatured(ctx context.Context) ([]*ListingView, error) {
	return q.store.FindFeatured(ctx, int32(q.catalog.FeaturedLimit))
}

func (q *listingQueriesImpl) ListForHost(ctx context.Context, hostID uuid.UUID, actorRole string) ([]*ListingView, error) {
	if actorRole != RoleHost {
		return nil, ErrForbiddenRole
	}
	return q.store.FindByHost(ctx, hostID)
}

// Search paginates and sorts first, then independently filters the page by
// availability when a date range was requested. Without dates the page is
// returned as-is regardless of bookings.
func (q *listingQueriesImpl) Search(ctx context.Context, criteria SearchCriteria) ([]*ListingView, error) {
	paging := NormalizePaging(criteria.Paging, q.catalog.DefaultPageSize, q.catalog.MaxPageSize)

	page, err := q.store.SearchPage(ctx, criteria.NumOfBeds, criteria.SortBy, int32(paging.Limit), int32(paging.Offset()))
	if err != nil {
		return nil, err
	}

	if criteria.Dates == nil {
		return page, nil
	}

	available := make([]*ListingView, 0, len(page))
	for _, candidate := range page {
		ok, err := q.availability.IsListingAvailable(ctx, candidate.ID, *criteria.Dates)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, candidate)
		}
	}
	return available, nil
}

func (q *listingQueriesImpl) GetTotalCost(ctx context.Context, listingID uuid.UUID, dates booking.DateRange) (*QuoteView, error) {
	view, err := q.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	nights := dates.Nights()
	total, err := domlisting.TotalCost(view.CostPerNight, nights)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCriteria)
	}

	return &QuoteView{
		TotalCost:    total,
		CostPerNight: view.CostPerNight,
		Nights:       nights,
	}, nil
}

func (q *listingQueriesImpl) GetAllAmenities(ctx context.Context) ([]*AmenityView, error) {
	return q.store.FindAllAmenities(ctx)
}

func (q *listingQueriesImpl) GetCoordinates(ctx context.Context, listingID uuid.UUID) (*CoordinatesView, error) {
	view, err := q.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	return &CoordinatesView{Latitude: view.Latitude, Longitude: view.Longitude}, nil
}
