package repository

import (
	"context"
	"log/slog"

	"stayhub/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const updateLastLoginQuery = `
	UPDATE users SET last_login_at = now() WHERE id = $1`

type UserRepository struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool, slogger: slog.Default()}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, updateLastLoginQuery, userID); err != nil {
		return infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to update last login", err)
	}
	return nil
}
