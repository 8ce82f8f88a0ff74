package readstore

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/infra"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findUserByIDQuery = `
	SELECT id, email, name, profile_picture, role, created_at
	FROM users
	WHERE id = $1`

const findCredentialsByEmailQuery = `
	SELECT id, password_hash, role
	FROM users
	WHERE email = $1`

type UserReadStore struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool, slogger: slog.Default()}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := s.pool.QueryRow(ctx, findUserByIDQuery, id).Scan(
		&v.ID, &v.Email, &v.Name, &v.ProfilePicture, &v.Role, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find user", err)
	}
	return &v, nil
}

func (s *UserReadStore) FindCredentialsByEmail(ctx context.Context, email string) (*queries.CredentialView, error) {
	var v queries.CredentialView
	err := s.pool.QueryRow(ctx, findCredentialsByEmailQuery, email).Scan(
		&v.ID, &v.PasswordHash, &v.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find credentials", err)
	}
	return &v, nil
}
