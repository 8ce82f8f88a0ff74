package readstore

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/listing"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `
	id, host_id, title, description, photo_thumbnail,
	cost_per_night, num_of_beds, location_type,
	latitude, longitude, created_at, updated_at`

const findListingByIDQuery = `
	SELECT` + listingColumns + `
	FROM listings
	WHERE id = $1`

const findFeaturedListingsQuery = `
	SELECT` + listingColumns + `
	FROM listings
	ORDER BY created_at DESC
	LIMIT $1`

const findListingsByHostQuery = `
	SELECT` + listingColumns + `
	FROM listings
	WHERE host_id = $1
	ORDER BY created_at DESC`

const findAllAmenitiesQuery = `
	SELECT id, category, name
	FROM amenities
	ORDER BY category, name`

const findAmenitiesForListingsQuery = `
	SELECT la.listing_id, a.id, a.category, a.name
	FROM listing_amenities la
	JOIN amenities a ON a.id = la.amenity_id
	WHERE la.listing_id = ANY($1::uuid[])
	ORDER BY a.category, a.name`

type ListingReadStore struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewListingReadStore(pool *pgxpool.Pool) *ListingReadStore {
	return &ListingReadStore{pool: pool, slogger: slog.Default()}
}

func (s *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row := s.pool.QueryRow(ctx, findListingByIDQuery, id)
	view, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "listing not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find listing", err)
	}
	if err := s.attachAmenities(ctx, []*queries.ListingView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ListingReadStore) FindFeatured(ctx context.Context, limit int32) ([]*queries.ListingView, error) {
	return s.findMany(ctx, findFeaturedListingsQuery, limit)
}

func (s *ListingReadStore) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.ListingView, error) {
	return s.findMany(ctx, findListingsByHostQuery, hostID)
}

// SearchPage filters and orders in SQL; availability filtering is layered
// on top by the caller and never reaches this store.
func (s *ListingReadStore) SearchPage(ctx context.Context, numOfBeds *int32, sortBy listing.SortBy, limit, offset int32) ([]*queries.ListingView, error) {
	order := "cost_per_night ASC"
	if sortBy == listing.SortCostDesc {
		order = "cost_per_night DESC"
	}

	query := `
	SELECT` + listingColumns + `
	FROM listings
	WHERE ($1::int IS NULL OR num_of_beds >= $1)
	ORDER BY ` + order + `, id
	LIMIT $2 OFFSET $3`

	return s.findMany(ctx, query, numOfBeds, limit, offset)
}

func (s *ListingReadStore) FindAllAmenities(ctx context.Context) ([]*queries.AmenityView, error) {
	rows, err := s.pool.Query(ctx, findAllAmenitiesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to list amenities", err)
	}
	defer rows.Close()

	var amenities []*queries.AmenityView
	for rows.Next() {
		var a queries.AmenityView
		if err := rows.Scan(&a.ID, &a.Category, &a.Name); err != nil {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan amenity", err)
		}
		amenities = append(amenities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read amenities", err)
	}
	return amenities, nil
}

func (s *ListingReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.ListingView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to query listings", err)
	}
	defer rows.Close()

	var views []*queries.ListingView
	for rows.Next() {
		view, err := scanListing(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan listing", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read listings", err)
	}

	if err := s.attachAmenities(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *ListingReadStore) attachAmenities(ctx context.Context, views []*queries.ListingView) error {
	if len(views) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.ListingView, len(views))
	ids := make([]string, 0, len(views))
	for _, v := range views {
		v.Amenities = []*queries.AmenityView{}
		byID[v.ID] = v
		ids = append(ids, v.ID.String())
	}

	rows, err := s.pool.Query(ctx, findAmenitiesForListingsQuery, ids)
	if err != nil {
		return infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to query listing amenities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var listingID uuid.UUID
		var a queries.AmenityView
		if err := rows.Scan(&listingID, &a.ID, &a.Category, &a.Name); err != nil {
			return infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to scan listing amenity", err)
		}
		if view, ok := byID[listingID]; ok {
			view.Amenities = append(view.Amenities, &a)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to read listing amenities", err)
	}
	return nil
}

func scanListing(row pgx.Row) (*queries.ListingView, error) {
	var v queries.ListingView
	err := row.Scan(
		&v.ID, &v.HostID, &v.Title, &v.Description, &v.PhotoThumbnail,
		&v.CostPerNight, &v.NumOfBeds, &v.LocationType,
		&v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// IsOwnedBy satisfies the bookings-side ownership port without handing the
// whole listing row across the service boundary.
func (s *ListingReadStore) IsOwnedBy(ctx context.Context, listingID, hostID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1 AND host_id = $2)`

	var owned bool
	if err := s.pool.QueryRow(ctx, query, listingID, hostID).Scan(&owned); err != nil {
		return false, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to check listing ownership", err)
	}
	return owned, nil
}
