//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/cookie"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestLogin - credential checks and token issuance
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Valid credentials issue a token cookie and return the account", func() {
		t := s.T()

		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		reqBody := request.LoginRequest{Email: "guest@example.com", Password: "password123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")

		var got response.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.NotEmpty(t, got.AccessToken)
		require.NotNil(t, got.User)
		require.Equal(t, guestID, got.User.ID)
		require.Equal(t, "guest@example.com", got.User.Email)
		require.Equal(t, string(user.RoleGuest), got.User.Role)

		accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, accessCookie)
		require.Equal(t, got.AccessToken, accessCookie.Value)
		require.True(t, accessCookie.HttpOnly)
	})

	s.Run("Error case: Wrong password is rejected without detail", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleGuest))

		reqBody := request.LoginRequest{Email: "guest@example.com", Password: "wrong-password"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: Unknown account gets the same answer as a wrong password", func() {
		t := s.T()

		reqBody := request.LoginRequest{Email: "nobody@example.com", Password: "password123"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})
}

// =============================================================================
// TestMe - authenticated account lookup
// =============================================================================

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Token holder reads their own account", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", string(user.RoleHost))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var got response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "host@example.com", got.Email)
		require.Equal(t, string(user.RoleHost), got.Role)
	})

	s.Run("Error case: Missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: Garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestLogout - cookie revocation
// =============================================================================

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the token cookie", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		authtest.LogoutUser(t, s.Router, cookies)
	})

	s.Run("Error case: Logout without a session is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/logout", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
