package federation

import "github.com/google/uuid"

// Typenames of entities exposed across service boundaries.
const (
	TypeListing = "Listing"
	TypeBooking = "Booking"
	TypeGuest   = "Guest"
	TypeHost    = "Host"
	TypeReview  = "Review"
)

// Stub is the minimal reference to an entity owned by another service:
// a typename plus an id, nothing else populated. Stubs only exist in
// transit between services and are never persisted. The gateway
// re-dispatches a stub to the owning service's entities endpoint to
// obtain the full record.
type Stub struct {
	Typename string    `json:"__typename" binding:"required"`
	ID       uuid.UUID `json:"id" binding:"required"`
}

func NewStub(typename string, id uuid.UUID) Stub {
	return Stub{Typename: typename, ID: id}
}
