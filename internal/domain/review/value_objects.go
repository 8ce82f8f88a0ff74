package review

import (
	"errors"
	"strings"
)

const MaxTextLength = 1000

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyText     = errors.New("review text cannot be empty")
	ErrTextTooLong   = errors.New("review text exceeds maximum length")
)

type Rating struct {
	value int
}

func NewRating(value int) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: value}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Text struct {
	value string
}

func NewText(value string) (Text, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Text{}, ErrEmptyText
	}
	if len(trimmed) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{value: trimmed}, nil
}

func (t Text) String() string {
	return t.value
}
