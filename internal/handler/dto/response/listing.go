package response

import (
	"time"

	"stayhub/internal/federation"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AmenityResponse struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
}

type ListingResponse struct {
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	PhotoThumbnail string            `json:"photoThumbnail"`
	CostPerNight   int64             `json:"costPerNight"`
	NumOfBeds      int32             `json:"numOfBeds"`
	LocationType   string            `json:"locationType"`
	Latitude       float64           `json:"latitude"`
	Longitude      float64           `json:"longitude"`
	Amenities      []AmenityResponse `json:"amenities"`
	// Host is a reference into the accounts service, not an embedded record.
	Host      federation.Stub `json:"host"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type ListingMutationResponse struct {
	Code    int              `json:"code"`
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Listing *ListingResponse `json:"listing,omitempty"`
}

type QuoteResponse struct {
	TotalCost    int64 `json:"totalCost"`
	CostPerNight int64 `json:"costPerNight"`
	Nights       int   `json:"nights"`
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RatingResponse struct {
	OverallRating *float64 `json:"overallRating"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	amenities := make([]AmenityResponse, 0, len(v.Amenities))
	for _, a := range v.Amenities {
		amenities = append(amenities, AmenityResponse{ID: a.ID, Category: a.Category, Name: a.Name})
	}
	return &ListingResponse{
		ID:             v.ID,
		Title:          v.Title,
		Description:    v.Description,
		PhotoThumbnail: v.PhotoThumbnail,
		CostPerNight:   v.CostPerNight,
		NumOfBeds:      v.NumOfBeds,
		LocationType:   v.LocationType,
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
		Amenities:      amenities,
		Host:           federation.NewStub(federation.TypeHost, v.HostID),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	responses := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromListingView(v))
	}
	return responses
}

func FromQuoteView(r *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		TotalCost:    r.TotalCost,
		CostPerNight: r.CostPerNight,
		Nights:       r.Nights,
	}
}

func FromAmenityViews(views []*queries.AmenityView) []AmenityResponse {
	amenities := make([]AmenityResponse, 0, len(views))
	for _, a := range views {
		amenities = append(amenities, AmenityResponse{ID: a.ID, Category: a.Category, Name: a.Name})
	}
	return amenities
}
