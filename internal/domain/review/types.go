package review

import (
	"errors"

	"stayhub/internal/domain/user"
)

var ErrInvalidTargetType = errors.New("invalid review target type")

type TargetType string

const (
	TargetGuest   TargetType = "GUEST"
	TargetHost    TargetType = "HOST"
	TargetListing TargetType = "LISTING"
)

func NewTargetType(value string) (TargetType, error) {
	tt := TargetType(value)
	if !tt.IsValid() {
		return "", ErrInvalidTargetType
	}
	return tt, nil
}

func (tt TargetType) String() string {
	return string(tt)
}

func (tt TargetType) IsValid() bool {
	switch tt {
	case TargetGuest, TargetHost, TargetListing:
		return true
	default:
		return false
	}
}

// AuthorRole derives who wrote a review from what it targets: the host
// reviews the guest; the guest reviews the host and the listing. Pure
// mapping, nothing is stored.
func AuthorRole(target TargetType) user.Role {
	if target == TargetGuest {
		return user.RoleHost
	}
	return user.RoleGuest
}
