package queries

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWalletNotFound = errs.New("wallet not found")
	ErrWalletAccess   = errs.New("wallet belongs to another user")
)

type WalletView struct {
	UserID    uuid.UUID `json:"user_id"`
	Balance   int64     `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*WalletView, error)
}

type WalletQueries interface {
	GetBalance(ctx context.Context, ownerID, actorID uuid.UUID) (*WalletView, error)
}

type walletQueriesImpl struct {
	store WalletReadStore
}

func NewWalletQueries(store WalletReadStore) WalletQueries {
	return &walletQueriesImpl{store: store}
}

// GetBalance only answers for the wallet's own user. Balances are private:
// a caller asking about anyone else's wallet is refused outright.
func (q *walletQueriesImpl) GetBalance(ctx context.Context, ownerID, actorID uuid.UUID) (*WalletView, error) {
	if ownerID != actorID {
		return nil, ErrWalletAccess
	}
	view, err := q.store.FindByUserID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return view, nil
}
