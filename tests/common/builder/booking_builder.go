//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ListingID    uuid.UUID
	GuestID      uuid.UUID
	CheckInDate  string
	CheckOutDate string
	TotalCost    int64
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ListingID:    uuid.New(),
		GuestID:      uuid.New(),
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-05",
		TotalCost:    480,
		CreatedAt:    time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDateRange() dombooking.DateRange {
	dates, err := dombooking.ParseDateRange(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		panic(err)
	}
	return dates
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ListingID, b.GuestID, b.BuildDateRange(), b.TotalCost)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ListingID:    b.ListingID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
	}
}

func (b *BookingBuilder) BuildCreateInput(guestRole string) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingID:    b.ListingID,
		GuestID:      b.GuestID,
		GuestRole:    guestRole,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
	}
}

func (b *BookingBuilder) BuildView(status string) *queries.BookingView {
	dates := b.BuildDateRange()
	return &queries.BookingView{
		ID:           uuid.New(),
		ListingID:    b.ListingID,
		GuestID:      b.GuestID,
		CheckInDate:  dates.CheckIn(),
		CheckOutDate: dates.CheckOut(),
		TotalCost:    b.TotalCost,
		Status:       status,
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *commands.BookingSnapshot {
	dates := b.BuildDateRange()
	return &commands.BookingSnapshot{
		ID:           uuid.New(),
		ListingID:    b.ListingID,
		GuestID:      b.GuestID,
		CheckInDate:  dates.CheckIn(),
		CheckOutDate: dates.CheckOut(),
		TotalCost:    b.TotalCost,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithListingID(listingID uuid.UUID) *BookingBuilder {
	b.ListingID = listingID
	return b
}

func (b *BookingBuilder) WithGuestID(guestID uuid.UUID) *BookingBuilder {
	b.GuestID = guestID
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithTotalCost(totalCost int64) *BookingBuilder {
	b.TotalCost = totalCost
	return b
}

// AsCompletedStay moves the whole range into the past so the derived
// status is COMPLETED.
func (b *BookingBuilder) AsCompletedStay() *BookingBuilder {
	b.CheckInDate = "2020-03-01"
	b.CheckOutDate = "2020-03-08"
	return b
}
