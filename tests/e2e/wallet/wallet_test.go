//go:build e2e

package wallet_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	walletURL = "/api/wallet"
	fundsURL  = "/api/wallet/funds"
)

type WalletSuite struct {
	e2e.SharedSuite
}

func TestWalletSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(WalletSuite))
}

// =============================================================================
// TestGetBalance - wallet read API tests
// =============================================================================

func (s *WalletSuite) TestGetBalance() {
	s.Run("Normal case: Owner reads their own balance", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		dbtest.FundWallet(t, s.DB, guestID, 750)

		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, walletURL, nil, token)

		var got response.WalletResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, guestID, got.UserID)
		require.Equal(t, int64(750), got.Funds)
	})

	s.Run("Normal case: A fresh account starts with an empty wallet", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))

		token := authtest.LoginUser(t, s.Router, "host@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, walletURL, nil, token)

		var got response.WalletResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, hostID, got.UserID)
		require.Equal(t, int64(0), got.Funds)
	})

	s.Run("Error case: Unauthenticated request is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, walletURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestAddFunds - wallet credit API tests
// =============================================================================

func (s *WalletSuite) TestAddFunds() {
	s.Run("Normal case: Adding funds returns the resulting balance", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		dbtest.FundWallet(t, s.DB, guestID, 200)

		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		reqBody := request.AddFundsRequest{Amount: 500}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fundsURL, reqBody, token)

		var got response.AddFundsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.Success)
		require.Equal(t, "Successfully added funds", got.Message)
		require.NotNil(t, got.Amount)
		require.Equal(t, int64(700), *got.Amount)

		require.Equal(t, int64(700), dbtest.WalletBalance(t, s.DB, guestID))
	})

	s.Run("Error case: Non-positive amount fails the payload without touching the balance", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))
		dbtest.FundWallet(t, s.DB, guestID, 200)

		token := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		reqBody := map[string]any{"amount": -50}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fundsURL, reqBody, token)

		httptest.AssertMutationResponse(t, w, http.StatusBadRequest, false, "Amount must be greater than zero.")
		require.Equal(t, int64(200), dbtest.WalletBalance(t, s.DB, guestID))
	})

	s.Run("Error case: Unauthenticated request is rejected", func() {
		t := s.T()

		reqBody := request.AddFundsRequest{Amount: 500}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fundsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
