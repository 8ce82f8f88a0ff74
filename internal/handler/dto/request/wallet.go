package request

type AddFundsRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}
