package listing

import "errors"

var (
	ErrInvalidLocationType = errors.New("invalid location type")
	ErrInvalidSortBy       = errors.New("invalid sort order")
)

type LocationType string

const (
	LocationSpaceship LocationType = "SPACESHIP"
	LocationHouse     LocationType = "HOUSE"
	LocationCampsite  LocationType = "CAMPSITE"
	LocationApartment LocationType = "APARTMENT"
	LocationRoom      LocationType = "ROOM"
)

func NewLocationType(value string) (LocationType, error) {
	lt := LocationType(value)
	if !lt.IsValid() {
		return "", ErrInvalidLocationType
	}
	return lt, nil
}

func (lt LocationType) String() string {
	return string(lt)
}

func (lt LocationType) IsValid() bool {
	switch lt {
	case LocationSpaceship, LocationHouse, LocationCampsite, LocationApartment, LocationRoom:
		return true
	default:
		return false
	}
}

// SortBy orders search results by nightly cost.
type SortBy string

const (
	SortCostAsc  SortBy = "COST_ASC"
	SortCostDesc SortBy = "COST_DESC"
)

func NewSortBy(value string) (SortBy, error) {
	if value == "" {
		return SortCostAsc, nil
	}
	sb := SortBy(value)
	switch sb {
	case SortCostAsc, SortCostDesc:
		return sb, nil
	default:
		return "", ErrInvalidSortBy
	}
}

func (sb SortBy) String() string {
	return string(sb)
}
