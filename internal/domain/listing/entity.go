package listing

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("listing title cannot be empty")
	ErrNonPositiveCost    = errors.New("cost per night must be positive")
	ErrNonPositiveBeds    = errors.New("number of beds must be positive")
	ErrNegativeNights     = errors.New("nights cannot be negative")
	ErrNoAmenities        = errors.New("listing must offer at least one amenity")
	ErrDuplicateAmenities = errors.New("duplicate amenity on listing")
)

type Amenity struct {
	ID       uuid.UUID
	Category string
	Name     string
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Listing struct {
	id             uuid.UUID
	hostID         uuid.UUID
	title          string
	description    string
	photoThumbnail string
	costPerNight   int64
	numOfBeds      int32
	locationType   LocationType
	coordinates    Coordinates
	amenityIDs     []uuid.UUID
}

func NewListing(
	hostID uuid.UUID,
	title, description, photoThumbnail string,
	costPerNight int64,
	numOfBeds int32,
	locationType LocationType,
	coordinates Coordinates,
	amenityIDs []uuid.UUID,
) (*Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if costPerNight <= 0 {
		return nil, ErrNonPositiveCost
	}
	if numOfBeds <= 0 {
		return nil, ErrNonPositiveBeds
	}
	if !locationType.IsValid() {
		return nil, ErrInvalidLocationType
	}
	if len(amenityIDs) == 0 {
		return nil, ErrNoAmenities
	}
	seen := make(map[uuid.UUID]struct{}, len(amenityIDs))
	for _, id := range amenityIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateAmenities
		}
		seen[id] = struct{}{}
	}

	return &Listing{
		id:             uuid.New(),
		hostID:         hostID,
		title:          title,
		description:    description,
		photoThumbnail: photoThumbnail,
		costPerNight:   costPerNight,
		numOfBeds:      numOfBeds,
		locationType:   locationType,
		coordinates:    coordinates,
		amenityIDs:     amenityIDs,
	}, nil
}

func ReconstructListing(
	id, hostID uuid.UUID,
	title, description, photoThumbnail string,
	costPerNight int64,
	numOfBeds int32,
	locationType LocationType,
	coordinates Coordinates,
	amenityIDs []uuid.UUID,
) *Listing {
	return &Listing{
		id:             id,
		hostID:         hostID,
		title:          title,
		description:    description,
		photoThumbnail: photoThumbnail,
		costPerNight:   costPerNight,
		numOfBeds:      numOfBeds,
		locationType:   locationType,
		coordinates:    coordinates,
		amenityIDs:     amenityIDs,
	}
}

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) HostID() uuid.UUID          { return l.hostID }
func (l *Listing) Title() string              { return l.title }
func (l *Listing) Description() string        { return l.description }
func (l *Listing) PhotoThumbnail() string     { return l.photoThumbnail }
func (l *Listing) CostPerNight() int64        { return l.costPerNight }
func (l *Listing) NumOfBeds() int32           { return l.numOfBeds }
func (l *Listing) LocationType() LocationType { return l.locationType }
func (l *Listing) Coordinates() Coordinates   { return l.coordinates }
func (l *Listing) AmenityIDs() []uuid.UUID    { return l.amenityIDs }

func (l *Listing) IsOwnedBy(hostID uuid.UUID) bool {
	return l.hostID == hostID
}

// TotalCost quotes a stay: nightly cost times whole nights.
func (l *Listing) TotalCost(nights int) (int64, error) {
	return TotalCost(l.costPerNight, nights)
}

func TotalCost(costPerNight int64, nights int) (int64, error) {
	if nights < 0 {
		return 0, ErrNegativeNights
	}
	return costPerNight * int64(nights), nil
}
