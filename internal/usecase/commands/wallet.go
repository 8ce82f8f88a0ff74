package commands

import (
	"context"
	"net/http"

	"stayhub/internal/domain/wallet"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWalletNotFound = errs.New("wallet not found")

type AddFundsResult struct {
	Code    int
	Success bool
	Message string
	// Amount is the resulting balance, present only on success.
	Amount *int64
}

type WalletCommands interface {
	AddFunds(ctx context.Context, userID uuid.UUID, amount int64) (*AddFundsResult, error)
}

type walletCommandsImpl struct {
	ledger FundsLedger
}

func NewWalletCommands(ledger FundsLedger) WalletCommands {
	return &walletCommandsImpl{ledger: ledger}
}

func (c *walletCommandsImpl) AddFunds(ctx context.Context, userID uuid.UUID, amount int64) (*AddFundsResult, error) {
	if err := wallet.ValidateAmount(amount); err != nil {
		return &AddFundsResult{
			Code:    http.StatusBadRequest,
			Success: false,
			Message: "Amount must be greater than zero.",
		}, nil
	}

	balance, err := c.ledger.Credit(ctx, userID, amount)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrWalletNotFound)
		}
		return nil, errs.Wrap(err, "failed to add funds")
	}

	return &AddFundsResult{
		Code:    http.StatusOK,
		Success: true,
		Message: "Successfully added funds",
		Amount:  &balance,
	}, nil
}
