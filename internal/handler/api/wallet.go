package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		walletQueries:  walletQueries,
	}
}

// @Summary Get wallet balance
// @Description Get the authenticated user's wallet balance
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WalletResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wallet [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Owner and actor are both the caller here; the guard in the query
	// layer protects programmatic callers that pass someone else's id.
	view, err := h.walletQueries.GetBalance(c.Request.Context(), userID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		case errors.Is(err, queries.ErrWalletAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Wallet belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary Add funds
// @Description Add funds to the authenticated user's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddFundsRequest true "Amount to add"
// @Success 200 {object} resdto.AddFundsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wallet/funds [post]
func (h *WalletHandler) AddFunds(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.walletCommands.AddFunds(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWalletNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(result.Code, resdto.AddFundsResponse{
		Code:    result.Code,
		Success: result.Success,
		Message: result.Message,
		Amount:  result.Amount,
	})
}
