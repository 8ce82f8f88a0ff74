package response

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/federation"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID uuid.UUID `json:"id"`
	// Listing and Guest are references into their owning services.
	Listing federation.Stub `json:"listing"`
	Guest   federation.Stub `json:"guest"`
	// Dates render human readable, e.g. "Jan 2, 2026".
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	TotalCost    int64     `json:"totalCost"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	Code    int              `json:"code"`
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

type DateRangeResponse struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		Listing:      federation.NewStub(federation.TypeListing, v.ListingID),
		Guest:        federation.NewStub(federation.TypeGuest, v.GuestID),
		CheckInDate:  booking.HumanReadableDate(v.CheckInDate),
		CheckOutDate: booking.HumanReadableDate(v.CheckOutDate),
		TotalCost:    v.TotalCost,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	responses := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromBookingView(v))
	}
	return responses
}

// Booked ranges feed calendars, so they stay machine readable.
func FromDateRangeViews(views []*queries.DateRangeView) []DateRangeResponse {
	ranges := make([]DateRangeResponse, 0, len(views))
	for _, v := range views {
		ranges = append(ranges, DateRangeResponse{
			CheckInDate:  v.CheckInDate.Format(booking.DateLayout),
			CheckOutDate: v.CheckOutDate.Format(booking.DateLayout),
		})
	}
	return ranges
}
