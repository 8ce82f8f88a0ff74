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

const findWalletByUserIDQuery = `
	SELECT user_id, balance, updated_at
	FROM wallets
	WHERE user_id = $1`

type WalletReadStore struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewWalletReadStore(pool *pgxpool.Pool) *WalletReadStore {
	return &WalletReadStore{pool: pool, slogger: slog.Default()}
}

func (s *WalletReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.WalletView, error) {
	var v queries.WalletView
	err := s.pool.QueryRow(ctx, findWalletByUserIDQuery, userID).Scan(
		&v.UserID, &v.Balance, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "wallet not found", err)
		}
		return nil, infra.WrapRepoErr(s.slogger, infra.KindDBFailure, "failed to find wallet", err)
	}
	return &v, nil
}
