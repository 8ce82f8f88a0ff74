package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidDate      = errors.New("invalid calendar date")
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// HumanDateLayout renders dates for display, e.g. "Jan 2, 2006".
	HumanDateLayout = "Jan 2, 2006"
)

// DateRange is the half-open interval [checkIn, checkOut) of a stay.
// Both bounds are UTC calendar dates (midnight-truncated).
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !in.Before(out) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

// Nights counts whole days between check-in (inclusive) and check-out
// (exclusive) by truncating the millisecond difference. Not DST-aware;
// dates are UTC so the approximation is exact here.
func (r DateRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

// Overlaps reports whether two half-open ranges share at least one night:
// existing.checkIn < queried.checkOut AND existing.checkOut > queried.checkIn.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

func (r DateRange) String() string {
	return r.checkIn.Format(DateLayout) + " - " + r.checkOut.Format(DateLayout)
}

// HumanReadableDate formats a calendar date the way booking views render it.
func HumanReadableDate(t time.Time) string {
	return t.UTC().Format(HumanDateLayout)
}

func truncateToDate(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
