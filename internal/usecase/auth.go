package usecase

import (
	"context"
	"errors"

	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserWriter interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.UserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	users      queries.UserReadStore
	writer     UserWriter
	jwtService *jwt.Service
}

func NewAuthUseCase(users queries.UserReadStore, writer UserWriter, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		writer:     writer,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.UserView, error) {
	cred, err := a.users.FindCredentialsByEmail(ctx, credentials.Email().String())
	if err != nil {
		// Deliberately indistinguishable from a wrong password.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(cred.PasswordHash, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(cred.Role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(cred.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.writer.UpdateLastLogin(ctx, cred.ID); err != nil {
		return "", nil, err
	}

	view, err := a.users.FindByID(ctx, cred.ID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}
	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error) {
	view, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
