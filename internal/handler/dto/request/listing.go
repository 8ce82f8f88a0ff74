package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title          string      `json:"title" binding:"required"`
	Description    string      `json:"description"`
	PhotoThumbnail string      `json:"photo_thumbnail"`
	CostPerNight   int64       `json:"cost_per_night" binding:"required,gt=0"`
	NumOfBeds      int32       `json:"num_of_beds" binding:"required,gt=0"`
	LocationType   string      `json:"location_type" binding:"required"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	AmenityIDs     []uuid.UUID `json:"amenity_ids" binding:"required,min=1"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Title:          r.Title,
		Description:    r.Description,
		PhotoThumbnail: r.PhotoThumbnail,
		CostPerNight:   r.CostPerNight,
		NumOfBeds:      r.NumOfBeds,
		LocationType:   r.LocationType,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AmenityIDs:     r.AmenityIDs,
	}
}

type UpdateListingRequest struct {
	Title          *string     `json:"title,omitempty"`
	Description    *string     `json:"description,omitempty"`
	PhotoThumbnail *string     `json:"photo_thumbnail,omitempty"`
	CostPerNight   *int64      `json:"cost_per_night,omitempty"`
	NumOfBeds      *int32      `json:"num_of_beds,omitempty"`
	LocationType   *string     `json:"location_type,omitempty"`
	Latitude       *float64    `json:"latitude,omitempty"`
	Longitude      *float64    `json:"longitude,omitempty"`
	AmenityIDs     []uuid.UUID `json:"amenity_ids,omitempty"`
}

func (r UpdateListingRequest) ToInput() commands.UpdateListingInput {
	return commands.UpdateListingInput{
		Title:          r.Title,
		Description:    r.Description,
		PhotoThumbnail: r.PhotoThumbnail,
		CostPerNight:   r.CostPerNight,
		NumOfBeds:      r.NumOfBeds,
		LocationType:   r.LocationType,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		AmenityIDs:     r.AmenityIDs,
	}
}

type SearchListingsQuery struct {
	CheckInDate  string `form:"check_in_date"`
	CheckOutDate string `form:"check_out_date"`
	NumOfBeds    *int32 `form:"num_of_beds"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	SortBy       string `form:"sort_by"`
}

type QuoteQuery struct {
	CheckInDate  string `form:"check_in_date" binding:"required"`
	CheckOutDate string `form:"check_out_date" binding:"required"`
}
