package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

// Status is derived from the stay dates at read time; it is never stored.
// CANCELLED exists for wire compatibility but no operation produces it.
type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
