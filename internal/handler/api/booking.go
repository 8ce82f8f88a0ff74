package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a stay: quote, debit funds, persist. Not idempotent.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} resdto.CreateBookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingInput{
		ListingID:    req.ListingID,
		GuestID:      userID,
		GuestRole:    role.String(),
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOnlyGuestsCanBook):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only guests can book a stay"})
		case errors.Is(err, commands.ErrBookingListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	resp := resdto.CreateBookingResponse{
		Code:    result.Code,
		Success: result.Success,
		Message: result.Message,
	}
	if result.Booking != nil {
		resp.Booking = resdto.FromBookingView(result.Booking)
	}
	c.JSON(result.Code, resp)
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Guest's bookings
// @Description Get the authenticated guest's bookings, optionally filtered by status
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "UPCOMING, COMPLETED or CANCELLED"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListForGuest(c.Request.Context(), userID, role.String(), status)
	if err != nil {
		if errors.Is(err, queries.ErrForbiddenRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only guests have trips"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Listing's bookings
// @Description Get bookings for a listing the authenticated host owns
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Listing ID"
// @Param status query string false "UPCOMING, COMPLETED or CANCELLED"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /listings/{id}/bookings [get]
func (h *BookingHandler) GetListingBookings(c *gin.Context) {
	listingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	views, err := h.bookingQueries.ListForListing(c.Request.Context(), listingID, userID, role.String(), status)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrForbiddenRole):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only hosts can view a listing's bookings"})
		case errors.Is(err, queries.ErrNotOwnedByHost):
			c.JSON(http.StatusForbidden, gin.H{"error": "Listing does not belong to you"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Listing availability
// @Description Check whether a listing is free for a date range
// @Tags bookings
// @Produce json
// @Param id path string true "Listing ID"
// @Param check_in_date query string true "Check-in date (2006-01-02)"
// @Param check_out_date query string true "Check-out date (2006-01-02)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	listingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	dates, err := booking.ParseDateRange(query.CheckInDate, query.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	available, err := h.bookingQueries.IsListingAvailable(c.Request.Context(), listingID, dates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

// @Summary Booked date ranges
// @Description Get a listing's current and future booked date ranges
// @Tags bookings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.DateRangeResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/booked-ranges [get]
func (h *BookingHandler) GetBookedRanges(c *gin.Context) {
	listingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ranges, err := h.bookingQueries.CurrentlyBookedRanges(c.Request.Context(), listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateRangeViews(ranges))
}

func parseStatusQuery(c *gin.Context) (*booking.Status, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status, err := booking.NewStatus(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return nil, false
	}
	return &status, true
}
