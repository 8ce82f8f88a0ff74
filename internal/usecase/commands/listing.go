package commands

import (
	"context"
	"net/http"

	"stayhub/internal/domain/listing"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrOnlyHostsCanManage = errs.New("only hosts can manage listings")

const msgListingNotOwned = "You can only update your own listings."

type CreateListingInput struct {
	Title          string
	Description    string
	PhotoThumbnail string
	CostPerNight   int64
	NumOfBeds      int32
	LocationType   string
	Latitude       float64
	Longitude      float64
	AmenityIDs     []uuid.UUID
}

// UpdateListingInput is partial: nil fields keep their current value.
type UpdateListingInput struct {
	Title          *string
	Description    *string
	PhotoThumbnail *string
	CostPerNight   *int64
	NumOfBeds      *int32
	LocationType   *string
	Latitude       *float64
	Longitude      *float64
	AmenityIDs     []uuid.UUID
}

type ListingResult struct {
	Code    int
	Success bool
	Message string
	Listing *queries.ListingView
}

type ListingCommands interface {
	CreateListing(ctx context.Context, hostID uuid.UUID, actorRole string, in CreateListingInput) (*ListingResult, error)
	UpdateListing(ctx context.Context, listingID, hostID uuid.UUID, actorRole string, in UpdateListingInput) (*ListingResult, error)
}

type listingCommandsImpl struct {
	writer       ListingWriter
	listingViews queries.ListingQueries
}

func NewListingCommands(writer ListingWriter, listingViews queries.ListingQueries) ListingCommands {
	return &listingCommandsImpl{writer: writer, listingViews: listingViews}
}

func (c *listingCommandsImpl) CreateListing(ctx context.Context, hostID uuid.UUID, actorRole string, in CreateListingInput) (*ListingResult, error) {
	if actorRole != queries.RoleHost {
		return nil, ErrOnlyHostsCanManage
	}

	locationType, err := listing.NewLocationType(in.LocationType)
	if err != nil {
		return failedListing(err.Error()), nil
	}

	l, err := listing.NewListing(
		hostID,
		in.Title, in.Description, in.PhotoThumbnail,
		in.CostPerNight, in.NumOfBeds,
		locationType,
		listing.Coordinates{Latitude: in.Latitude, Longitude: in.Longitude},
		in.AmenityIDs,
	)
	if err != nil {
		return failedListing(err.Error()), nil
	}

	if err := c.writer.Create(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to create listing")
	}

	return c.successResult(ctx, l.ID(), "Successfully created listing")
}

func (c *listingCommandsImpl) UpdateListing(ctx context.Context, listingID, hostID uuid.UUID, actorRole string, in UpdateListingInput) (*ListingResult, error) {
	if actorRole != queries.RoleHost {
		return nil, ErrOnlyHostsCanManage
	}

	current, err := c.listingViews.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if current.HostID != hostID {
		return failedListing(msgListingNotOwned), nil
	}

	updated, err := applyListingUpdate(current, in)
	if err != nil {
		return failedListing(err.Error()), nil
	}

	if err := c.writer.Update(ctx, updated); err != nil {
		return nil, errs.Wrap(err, "failed to update listing")
	}

	return c.successResult(ctx, listingID, "Successfully updated listing")
}

// applyListingUpdate folds the partial input over the current view and
// revalidates the whole listing through the domain constructor.
func applyListingUpdate(current *queries.ListingView, in UpdateListingInput) (*listing.Listing, error) {
	title := current.Title
	if in.Title != nil {
		title = *in.Title
	}
	description := current.Description
	if in.Description != nil {
		description = *in.Description
	}
	photoThumbnail := current.PhotoThumbnail
	if in.PhotoThumbnail != nil {
		photoThumbnail = *in.PhotoThumbnail
	}
	costPerNight := current.CostPerNight
	if in.CostPerNight != nil {
		costPerNight = *in.CostPerNight
	}
	numOfBeds := current.NumOfBeds
	if in.NumOfBeds != nil {
		numOfBeds = *in.NumOfBeds
	}
	locationTypeValue := current.LocationType
	if in.LocationType != nil {
		locationTypeValue = *in.LocationType
	}
	latitude := current.Latitude
	if in.Latitude != nil {
		latitude = *in.Latitude
	}
	longitude := current.Longitude
	if in.Longitude != nil {
		longitude = *in.Longitude
	}

	amenityIDs := in.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = make([]uuid.UUID, 0, len(current.Amenities))
		for _, a := range current.Amenities {
			amenityIDs = append(amenityIDs, a.ID)
		}
	}

	locationType, err := listing.NewLocationType(locationTypeValue)
	if err != nil {
		return nil, err
	}

	draft, err := listing.NewListing(
		current.HostID,
		title, description, photoThumbnail,
		costPerNight, numOfBeds,
		locationType,
		listing.Coordinates{Latitude: latitude, Longitude: longitude},
		amenityIDs,
	)
	if err != nil {
		return nil, err
	}

	return listing.ReconstructListing(
		current.ID, current.HostID,
		draft.Title(), draft.Description(), draft.PhotoThumbnail(),
		draft.CostPerNight(), draft.NumOfBeds(), draft.LocationType(),
		draft.Coordinates(), draft.AmenityIDs(),
	), nil
}

func (c *listingCommandsImpl) successResult(ctx context.Context, listingID uuid.UUID, msg string) (*ListingResult, error) {
	view, err := c.listingViews.GetByID(ctx, listingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load listing after write")
	}
	return &ListingResult{
		Code:    http.StatusOK,
		Success: true,
		Message: msg,
		Listing: view,
	}, nil
}

func failedListing(msg string) *ListingResult {
	return &ListingResult{Code: http.StatusBadRequest, Success: false, Message: msg}
}
