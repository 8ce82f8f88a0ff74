package request

import (
	"github.com/google/uuid"
)

// Dates arrive as "2006-01-02" strings; parsing and range validation happen
// in the orchestrator before any funds move.
type CreateBookingRequest struct {
	ListingID    uuid.UUID `json:"listing_id" binding:"required"`
	CheckInDate  string    `json:"check_in_date" binding:"required"`
	CheckOutDate string    `json:"check_out_date" binding:"required"`
}

type AvailabilityQuery struct {
	CheckInDate  string `form:"check_in_date" binding:"required"`
	CheckOutDate string `form:"check_out_date" binding:"required"`
}
