package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Funds     int64     `json:"funds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddFundsResponse struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Amount  *int64 `json:"amount,omitempty"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	return &WalletResponse{
		UserID:    v.UserID,
		Funds:     v.Balance,
		UpdatedAt: v.UpdatedAt,
	}
}
