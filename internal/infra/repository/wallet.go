package repository

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/wallet"
	"stayhub/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The balance check lives in the UPDATE itself so a debit can never race
// another debit past zero.
const debitWalletQuery = `
	UPDATE wallets
	SET balance = balance - $2, updated_at = now()
	WHERE user_id = $1 AND balance >= $2
	RETURNING balance`

const creditWalletQuery = `
	UPDATE wallets
	SET balance = balance + $2, updated_at = now()
	WHERE user_id = $1
	RETURNING balance`

const walletExistsQuery = `
	SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1)`

type WalletRepository struct {
	pool    *pgxpool.Pool
	slogger *slog.Logger
}

func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{pool: pool, slogger: slog.Default()}
}

// Debit atomically withdraws amount and returns the remaining balance.
// A wallet that exists but cannot cover the amount yields
// wallet.ErrInsufficientFunds; a missing wallet yields KindNotFound.
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	if err := wallet.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.pool.QueryRow(ctx, debitWalletQuery, userID, amount).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to debit wallet", err)
	}

	var exists bool
	if existsErr := r.pool.QueryRow(ctx, walletExistsQuery, userID).Scan(&exists); existsErr != nil {
		return 0, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to check wallet", existsErr)
	}
	if !exists {
		return 0, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "wallet not found", err)
	}
	return 0, wallet.ErrInsufficientFunds
}

// Credit atomically deposits amount and returns the new balance. It backs
// both fund top-ups and refund compensation after a failed booking write.
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	if err := wallet.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.pool.QueryRow(ctx, creditWalletQuery, userID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr(r.slogger, infra.KindNotFound, "wallet not found", err)
		}
		return 0, infra.WrapRepoErr(r.slogger, infra.KindDBFailure, "failed to credit wallet", err)
	}
	return balance, nil
}
