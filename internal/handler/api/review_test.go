//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/review"
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
	role         user.Role
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()
	s.role = user.RoleGuest

	// Mock authentication middleware for testing; role set per subtest
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings/:id/reviews/guest", authMiddleware, s.handler.SubmitGuestReview)
	s.router.POST("/bookings/:id/reviews", authMiddleware, s.handler.SubmitStayReviews)
	s.router.GET("/bookings/:id/reviews", authMiddleware, s.handler.GetBookingReviews)
	s.router.GET("/listings/:id/reviews", s.handler.GetListingReviews)
	s.router.GET("/listings/:id/rating", s.handler.GetListingRating)
	s.router.GET("/hosts/:id/rating", s.handler.GetHostRating)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestSubmitGuestReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmitGuestReview() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reviews/guest"

	b := builder.NewReviewBuilder().WithBookingID(bookingID)
	reqBody := b.BuildInputRequestDTO()

	s.Run("success: host's review of the guest comes back in the envelope", func() {
		s.role = user.RoleHost
		view := b.With(func(r *builder.ReviewBuilder) {
			r.TargetType = review.TargetGuest
			r.AuthorID = s.userID
		}).BuildView()

		s.mockCommands.EXPECT().
			SubmitGuestReview(gomock.Any(), bookingID, s.userID, string(user.RoleHost), b.BuildInput()).
			Return(&commands.GuestReviewResult{
				Code:        http.StatusOK,
				Success:     true,
				Message:     "Successfully submitted review",
				GuestReview: view,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.GuestReviewMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Require().NotNil(response.GuestReview)
		s.Equal(view.ID, response.GuestReview.ID)
		s.Equal("Host", response.GuestReview.Author.Typename)
		s.Equal(s.userID, response.GuestReview.Author.ID)
	})

	s.Run("failure payload: reviewing before check-out returns the envelope, not an error", func() {
		s.role = user.RoleHost
		s.mockCommands.EXPECT().
			SubmitGuestReview(gomock.Any(), bookingID, s.userID, string(user.RoleHost), gomock.Any()).
			Return(&commands.GuestReviewResult{
				Code:    http.StatusBadRequest,
				Success: false,
				Message: "You can only review a stay after check-out.",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertMutationResponse(s.T(), rec, http.StatusBadRequest, false, "after check-out")
	})

	s.Run("validation: out-of-range rating is rejected before the usecase runs", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", 6))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("validation: malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/reviews/guest", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("unauthorized: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error mapping: usecase errors translate to statuses", func() {
		testCases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"role not allowed to review guests", queries.ErrForbiddenRole, http.StatusForbidden, "You cannot review this booking"},
			{"caller is not the booking's host", commands.ErrNotBookingParticipant, http.StatusForbidden, "You cannot review this booking"},
			{"booking does not exist", commands.ErrReviewBookingNotFound, http.StatusNotFound, "Booking not found"},
			{"storage failure", errs.New("db down"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.role = user.RoleHost
				s.mockCommands.EXPECT().
					SubmitGuestReview(gomock.Any(), bookingID, s.userID, string(user.RoleHost), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}

// ================================================================================
// TestSubmitStayReviews
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmitStayReviews() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reviews"

	hostReview := builder.NewReviewBuilder().WithBookingID(bookingID).WithRating(4)
	locationReview := builder.NewReviewBuilder().WithBookingID(bookingID).WithText("Great view of the meteor shower")
	reqBody := reqdto.SubmitStayReviewsRequest{
		HostReview:     hostReview.BuildInputRequestDTO(),
		LocationReview: locationReview.BuildInputRequestDTO(),
	}

	s.Run("success: both reviews land and come back together", func() {
		s.role = user.RoleGuest
		hostView := hostReview.With(func(r *builder.ReviewBuilder) {
			r.TargetType = review.TargetHost
			r.AuthorID = s.userID
		}).BuildView()
		locationView := locationReview.With(func(r *builder.ReviewBuilder) {
			r.TargetType = review.TargetListing
			r.AuthorID = s.userID
		}).BuildView()

		s.mockCommands.EXPECT().
			SubmitHostAndLocationReviews(gomock.Any(), bookingID, s.userID, string(user.RoleGuest),
				hostReview.BuildInput(), locationReview.BuildInput()).
			Return(&commands.StayReviewsResult{
				Code:           http.StatusOK,
				Success:        true,
				Message:        "Successfully submitted reviews",
				HostReview:     hostView,
				LocationReview: locationView,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.StayReviewsMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Require().NotNil(response.HostReview)
		s.Require().NotNil(response.LocationReview)
		s.Equal("Guest", response.HostReview.Author.Typename)
		s.Equal("Guest", response.LocationReview.Author.Typename)
		s.Equal(int32(4), response.HostReview.Rating)
	})

	s.Run("validation: missing location review", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("location_review", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("forbidden: caller did not book this stay", func() {
		s.role = user.RoleGuest
		s.mockCommands.EXPECT().
			SubmitHostAndLocationReviews(gomock.Any(), bookingID, s.userID, string(user.RoleGuest), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrNotBookingParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You cannot review this booking")
	})
}

// ================================================================================
// TestGetBookingReviews
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGetBookingReviews() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reviews"

	s.Run("success: unwritten reviews come back null", func() {
		guestView := builder.NewReviewBuilder().WithBookingID(bookingID).
			WithTarget(review.TargetGuest, uuid.New()).BuildView()

		s.mockQueries.EXPECT().
			GetForBooking(gomock.Any(), bookingID, review.TargetGuest).
			Return(guestView, nil).Times(1)
		s.mockQueries.EXPECT().
			GetForBooking(gomock.Any(), bookingID, review.TargetHost).
			Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().
			GetForBooking(gomock.Any(), bookingID, review.TargetListing).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response struct {
			GuestReview    *resdto.ReviewResponse `json:"guestReview"`
			HostReview     *resdto.ReviewResponse `json:"hostReview"`
			LocationReview *resdto.ReviewResponse `json:"locationReview"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.GuestReview)
		s.Equal(guestView.ID, response.GuestReview.ID)
		s.Nil(response.HostReview)
		s.Nil(response.LocationReview)
	})

	s.Run("error: read store failure", func() {
		s.mockQueries.EXPECT().
			GetForBooking(gomock.Any(), bookingID, review.TargetGuest).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestRatings
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRatings() {
	s.Run("success: listing rating averages existing reviews", func() {
		listingID := uuid.New()
		rating := 4.5
		s.mockQueries.EXPECT().
			OverallRatingForListing(gomock.Any(), listingID).
			Return(&rating, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+listingID.String()+"/rating", nil, "")

		var response resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.OverallRating)
		s.InDelta(4.5, *response.OverallRating, 0.0001)
	})

	s.Run("success: unrated host reports null, not zero", func() {
		hostID := uuid.New()
		s.mockQueries.EXPECT().
			OverallRatingForHost(gomock.Any(), hostID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/"+hostID.String()+"/rating", nil, "")

		var response resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.OverallRating)
	})

	s.Run("success: listing reviews list", func() {
		listingID := uuid.New()
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithTarget(review.TargetListing, listingID).BuildView(),
			builder.NewReviewBuilder().WithTarget(review.TargetListing, listingID).WithRating(3).BuildView(),
		}
		s.mockQueries.EXPECT().
			ListForListing(gomock.Any(), listingID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+listingID.String()+"/reviews", nil, "")

		var response []*resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal(int32(3), response[1].Rating)
	})
}
