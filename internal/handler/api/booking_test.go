//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	guestID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.guestID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		// Mock authenticated guest
		c.Set("user_id", s.guestID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.GetGuestBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetByID)
	s.router.GET("/listings/:id/bookings", authMiddleware, s.handler.GetListingBookings)
	s.router.GET("/listings/:id/availability", s.handler.GetAvailability)
	s.router.GET("/listings/:id/booked-ranges", s.handler.GetBookedRanges)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 200 OK with the booking envelope", func() {
		view := b.BuildView(string(booking.StatusUpcoming))
		result := &commands.BookingResult{
			Code:    http.StatusOK,
			Success: true,
			Message: "Successfully booked!",
			Booking: view,
		}

		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), commands.CreateBookingInput{
				ListingID:    reqBody.ListingID,
				GuestID:      s.guestID,
				GuestRole:    string(user.RoleGuest),
				CheckInDate:  reqBody.CheckInDate,
				CheckOutDate: reqBody.CheckOutDate,
			}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("Successfully booked!", response.Message)
		s.Require().NotNil(response.Booking)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("Listing", response.Booking.Listing.Typename)
		s.Equal(view.ListingID, response.Booking.Listing.ID)
		s.Equal("Guest", response.Booking.Guest.Typename)
		s.Equal(view.GuestID, response.Booking.Guest.ID)
		s.Equal("Oct 1, 2026", response.Booking.CheckInDate)
		s.Equal("Oct 5, 2026", response.Booking.CheckOutDate)
	})

	s.Run("failure payload: domain-rule violations come back with the envelope status", func() {
		testCases := []struct {
			name    string
			result  *commands.BookingResult
			message string
		}{
			{
				name:    "insufficient funds",
				result:  &commands.BookingResult{Code: http.StatusBadRequest, Message: "We couldn't complete your request because your funds are insufficient."},
				message: "funds are insufficient",
			},
			{
				name:    "dates unavailable",
				result:  &commands.BookingResult{Code: http.StatusBadRequest, Message: "The listing is unavailable for the selected dates."},
				message: "unavailable for the selected dates",
			},
			{
				name:    "refund after failed write",
				result:  &commands.BookingResult{Code: http.StatusInternalServerError, Message: "We couldn't complete your booking. Your payment has been refunded."},
				message: "has been refunded",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(tc.result, nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertMutationResponse(s.T(), rec, tc.result.Code, false, tc.message)
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: listing_id (required)", mutate: testutil.Field("listing_id", nil)},
			{name: "missing field: check_in_date (required)", mutate: testutil.Field("check_in_date", nil)},
			{name: "missing field: check_out_date (required)", mutate: testutil.Field("check_out_date", nil)},
			{name: "malformed listing_id", mutate: testutil.Field("listing_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "only guests can book",
				commandsError:  commands.ErrOnlyGuestsCanBook,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only guests can book",
			},
			{
				name:           "listing not found",
				commandsError:  commands.ErrBookingListingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Listing not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetByID
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetByID() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView(string(booking.StatusUpcoming))
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(string(booking.StatusUpcoming), response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestGetGuestBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetGuestBookings() {
	url := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(string(booking.StatusUpcoming)),
		builder.NewBookingBuilder().AsCompletedStay().BuildView(string(booking.StatusCompleted)),
	}

	s.Run("success: returns the guest's trips", func() {
		s.mockQueries.EXPECT().
			ListForGuest(gomock.Any(), s.guestID, string(user.RoleGuest), (*booking.Status)(nil)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: status filter is passed through", func() {
		status := booking.StatusUpcoming
		s.mockQueries.EXPECT().
			ListForGuest(gomock.Any(), s.guestID, string(user.RoleGuest), &status).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=UPCOMING", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=PENDING", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking status")
	})

	s.Run("error: 403 Forbidden for non-guest callers", func() {
		s.mockQueries.EXPECT().
			ListForGuest(gomock.Any(), s.guestID, string(user.RoleGuest), (*booking.Status)(nil)).
			Return(nil, queries.ErrForbiddenRole).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only guests have trips")
	})
}

// ================================================================================
// TestGetListingBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetListingBookings() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithListingID(listingID).BuildView(string(booking.StatusUpcoming)),
	}

	s.Run("success: returns the listing's bookings", func() {
		s.mockQueries.EXPECT().
			ListForListing(gomock.Any(), listingID, s.guestID, string(user.RoleGuest), (*booking.Status)(nil)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not a host",
				queriesError:   queries.ErrForbiddenRole,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only hosts can view",
			},
			{
				name:           "listing owned by another host",
				queriesError:   queries.ErrNotOwnedByHost,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "does not belong to you",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().
					ListForListing(gomock.Any(), listingID, s.guestID, string(user.RoleGuest), (*booking.Status)(nil)).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAvailability() {
	listingID := uuid.New()
	baseURL := "/listings/" + listingID.String() + "/availability"

	s.Run("success: reports availability without authentication", func() {
		dates, err := booking.ParseDateRange("2026-10-01", "2026-10-05")
		s.Require().NoError(err)

		s.mockQueries.EXPECT().
			IsListingAvailable(gomock.Any(), listingID, dates).
			Return(true, nil).Times(1)

		url := baseURL + "?check_in_date=2026-10-01&check_out_date=2026-10-05"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
	})

	s.Run("error: 400 Bad Request when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request for an inverted range", func() {
		url := baseURL + "?check_in_date=2026-10-05&check_out_date=2026-10-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

// ================================================================================
// TestGetBookedRanges
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBookedRanges() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/booked-ranges"

	s.Run("success: returns machine readable ranges", func() {
		dates, err := booking.ParseDateRange("2026-10-01", "2026-10-05")
		s.Require().NoError(err)
		ranges := []*queries.DateRangeView{
			{CheckInDate: dates.CheckIn(), CheckOutDate: dates.CheckOut()},
		}

		s.mockQueries.EXPECT().
			CurrentlyBookedRanges(gomock.Any(), listingID).
			Return(ranges, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.DateRangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("2026-10-01", response[0].CheckInDate)
		s.Equal("2026-10-05", response[0].CheckOutDate)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().
			CurrentlyBookedRanges(gomock.Any(), listingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
