package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/listing"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/infra/uow"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertListingQuery = `
	INSERT INTO listings (
		id, host_id, title, description, photo_thumbnail,
		cost_per_night, num_of_beds, location_type, latitude, longitude
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at`

const updateListingQuery = `
	UPDATE listings
	SET title = $2, description = $3, photo_thumbnail = $4,
	    cost_per_night = $5, num_of_beds = $6, location_type = $7,
	    latitude = $8, longitude = $9, updated_at = now()
	WHERE id = $1`

const insertListingAmenityQuery = `
	INSERT INTO listing_amenities (listing_id, amenity_id)
	VALUES ($1, $2)`

const deleteListingAmenitiesQuery = `
	DELETE FROM listing_amenities WHERE listing_id = $1`

type ListingRepository struct {
	unit    uow.UnitOfWork
	slogger *slog.Logger
}

func NewListingRepository(unit uow.UnitOfWork) *ListingRepository {
	return &ListingRepository{unit: unit, slogger: slog.Default()}
}

// Create writes the listing row and its amenity links in one transaction.
func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	return r.unit.Within(ctx, func(ctx context.Context, q db.Queryer) error {
		var createdAt time.Time
		err := q.QueryRow(ctx, insertListingQuery,
			l.ID(), l.HostID(), l.Title(), l.Description(), l.PhotoThumbnail(),
			l.CostPerNight(), l.NumOfBeds(), string(l.LocationType()),
			l.Coordinates().Latitude, l.Coordinates().Longitude,
		).Scan(&createdAt)
		if err != nil {
			return r.wrapWriteErr("failed to create listing", err)
		}
		return r.insertAmenityLinks(ctx, q, l)
	})
}

// Update rewrites the listing row and replaces its amenity links atomically.
func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	return r.unit.Within(ctx, func(ctx context.Context, q db.Queryer) error {
		tag, err := q.Exec(ctx, updateListingQuery,
			l.ID(), l.Title(), l.Description(), l.PhotoThumbnail(),
			l.CostPerNight(), l.NumOfBeds(), string(l.LocationType()),
			l.Coordinates().Latitude, l.Coordinates().Longitude,
		)
		if err != nil {
			return r.wrapWriteErr("failed to update listing", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr(r.slogger, infra.KindNotFound, "listing not found", pgx.ErrNoRows)
		}

		if _, err := q.Exec(ctx, deleteListingAmenitiesQuery, l.ID()); err != nil {
			return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to clear listing amenities", err)
		}
		return r.insertAmenityLinks(ctx, q, l)
	})
}

func (r *ListingRepository) insertAmenityLinks(ctx context.Context, q db.Queryer, l *listing.Listing) error {
	for _, amenityID := range l.AmenityIDs() {
		if _, err := q.Exec(ctx, insertListingAmenityQuery, l.ID(), amenityID); err != nil {
			return r.wrapWriteErr("failed to link amenity", err)
		}
	}
	return nil
}

func (r *ListingRepository) wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(r.slogger, infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(r.slogger, infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, msg, err)
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)
