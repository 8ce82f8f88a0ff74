package queries

import "stayhub/internal/pkg/errs"

// Role strings as carried in the auth context.
const (
	RoleGuest = "Guest"
	RoleHost  = "Host"
)

var (
	ErrForbiddenRole  = errs.New("role is not allowed to perform this query")
	ErrInvalidPaging  = errs.New("invalid pagination parameters")
	ErrNotOwnedByHost = errs.New("listing does not belong to host")
)

// Paging is plain offset pagination: the upstream gateway pages search
// results by page number, not by cursor.
type Paging struct {
	Page  int
	Limit int
}

func NormalizePaging(p Paging, defaultLimit, maxLimit int) Paging {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

func (p Paging) Offset() int {
	return (p.Page - 1) * p.Limit
}
