package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/review"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Review a guest
// @Description Host reviews the guest of a completed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReviewInputRequest true "Review"
// @Success 200 {object} resdto.GuestReviewMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/reviews/guest [post]
func (h *ReviewHandler) SubmitGuestReview(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	var req reqdto.ReviewInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.reviewCommands.SubmitGuestReview(c.Request.Context(), bookingID, userID, role.String(), req.ToInput())
	if err != nil {
		h.abortReviewError(c, err)
		return
	}

	resp := resdto.GuestReviewMutationResponse{
		Code:    result.Code,
		Success: result.Success,
		Message: result.Message,
	}
	if result.GuestReview != nil {
		resp.GuestReview = resdto.FromReviewView(result.GuestReview)
	}
	c.JSON(result.Code, resp)
}

// @Summary Review host and location
// @Description Guest reviews the host and the listing of a completed booking together
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SubmitStayReviewsRequest true "Host and location reviews"
// @Success 200 {object} resdto.StayReviewsMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/reviews [post]
func (h *ReviewHandler) SubmitStayReviews(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	var req reqdto.SubmitStayReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.reviewCommands.SubmitHostAndLocationReviews(
		c.Request.Context(), bookingID, userID, role.String(),
		req.HostReview.ToInput(), req.LocationReview.ToInput(),
	)
	if err != nil {
		h.abortReviewError(c, err)
		return
	}

	resp := resdto.StayReviewsMutationResponse{
		Code:    result.Code,
		Success: result.Success,
		Message: result.Message,
	}
	if result.HostReview != nil {
		resp.HostReview = resdto.FromReviewView(result.HostReview)
	}
	if result.LocationReview != nil {
		resp.LocationReview = resdto.FromReviewView(result.LocationReview)
	}
	c.JSON(result.Code, resp)
}

// @Summary Booking reviews
// @Description Get the reviews written for a booking
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]*resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/{id}/reviews [get]
func (h *ReviewHandler) GetBookingReviews(c *gin.Context) {
	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	guestReview, err := h.reviewQueries.GetForBooking(ctx, bookingID, review.TargetGuest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	hostReview, err := h.reviewQueries.GetForBooking(ctx, bookingID, review.TargetHost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	locationReview, err := h.reviewQueries.GetForBooking(ctx, bookingID, review.TargetListing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guestReview":    resdto.FromReviewView(guestReview),
		"hostReview":     resdto.FromReviewView(hostReview),
		"locationReview": resdto.FromReviewView(locationReview),
	})
}

// @Summary Listing reviews
// @Description Get all reviews of a listing
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/reviews [get]
func (h *ReviewHandler) GetListingReviews(c *gin.Context) {
	listingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.reviewQueries.ListForListing(c.Request.Context(), listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Listing rating
// @Description Get the overall rating of a listing; null when unrated
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/rating [get]
func (h *ReviewHandler) GetListingRating(c *gin.Context) {
	listingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	rating, err := h.reviewQueries.OverallRatingForListing(c.Request.Context(), listingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.RatingResponse{OverallRating: rating})
}

// @Summary Host rating
// @Description Get the overall rating of a host; null when unrated
// @Tags reviews
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} map[string]string
// @Router /hosts/{id}/rating [get]
func (h *ReviewHandler) GetHostRating(c *gin.Context) {
	hostID, ok := parseIDParam(c)
	if !ok {
		return
	}

	rating, err := h.reviewQueries.OverallRatingForHost(c.Request.Context(), hostID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.RatingResponse{OverallRating: rating})
}

func (h *ReviewHandler) abortReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrForbiddenRole), errors.Is(err, commands.ErrNotBookingParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot review this booking"})
	case errors.Is(err, commands.ErrReviewBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
