package queries

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profile_picture"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// CredentialView carries the password hash and is only ever handed to the
// login flow; it must not leak into response DTOs.
type CredentialView struct {
	ID           uuid.UUID
	PasswordHash string
	Role         string
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*CredentialView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	GetByIDWithRole(ctx context.Context, id uuid.UUID, role string) (*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

// GetByIDWithRole resolves a Guest or Host reference: the id must exist AND
// hold the expected role, otherwise the reference is treated as missing.
func (q *userQueriesImpl) GetByIDWithRole(ctx context.Context, id uuid.UUID, role string) (*UserView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.Role != role {
		return nil, ErrUserNotFound
	}
	return view, nil
}
