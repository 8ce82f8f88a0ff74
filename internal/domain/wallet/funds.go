// Package wallet holds the payments ledger's funds rules. A wallet is a
// 1:1 balance row owned by the ledger; every mutation happens through the
// ledger's atomic debit/credit statements, so the balance is never
// rehydrated into an entity.
package wallet

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// ValidateAmount guards debit/credit inputs before they reach the ledger.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}
