package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/listing"
	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
	}
}

// @Summary Featured listings
// @Description Get the curated set of featured listings
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /listings/featured [get]
func (h *ListingHandler) GetFeatured(c *gin.Context) {
	views, err := h.listingQueries.GetFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Description Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Search listings
// @Description Search listings with paging, sorting and optional date availability filtering
// @Tags listings
// @Produce json
// @Param check_in_date query string false "Check-in date (2006-01-02)"
// @Param check_out_date query string false "Check-out date (2006-01-02)"
// @Param num_of_beds query int false "Minimum number of beds"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort_by query string false "COST_ASC or COST_DESC"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var query reqdto.SearchListingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	sortBy, err := listing.NewSortBy(query.SortBy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort order"})
		return
	}

	criteria := queries.SearchCriteria{
		NumOfBeds: query.NumOfBeds,
		SortBy:    sortBy,
		Paging:    queries.Paging{Page: query.Page, Limit: query.Limit},
	}

	// Both dates or neither: a single date cannot express a stay.
	if query.CheckInDate != "" || query.CheckOutDate != "" {
		dates, err := booking.ParseDateRange(query.CheckInDate, query.CheckOutDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
			return
		}
		criteria.Dates = &dates
	}

	views, err := h.listingQueries.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Quote a stay
// @Description Quote the total cost of a stay at a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param check_in_date query string true "Check-in date (2006-01-02)"
// @Param check_out_date query string true "Check-out date (2006-01-02)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/quote [get]
func (h *ListingHandler) Quote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var query reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	dates, err := booking.ParseDateRange(query.CheckInDate, query.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		return
	}

	quote, err := h.listingQueries.GetTotalCost(c.Request.Context(), id, dates)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		case errors.Is(err, queries.ErrInvalidCriteria):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary Listing coordinates
// @Description Get the coordinates of a listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.CoordinatesResponse
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/coordinates [get]
func (h *ListingHandler) GetCoordinates(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	coords, err := h.listingQueries.GetCoordinates(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.CoordinatesResponse{Latitude: coords.Latitude, Longitude: coords.Longitude})
}

// @Summary List amenities
// @Description Get all amenities available for listings
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.AmenityResponse
// @Router /amenities [get]
func (h *ListingHandler) GetAmenities(c *gin.Context) {
	views, err := h.listingQueries.GetAllAmenities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAmenityViews(views))
}

// @Summary Host's listings
// @Description Get all listings owned by the authenticated host
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /host/listings [get]
func (h *ListingHandler) GetHostListings(c *gin.Context) {
	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	views, err := h.listingQueries.ListForHost(c.Request.Context(), userID, role.String())
	if err != nil {
		if errors.Is(err, queries.ErrForbiddenRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only hosts have listings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Create listing
// @Description Create a new listing for the authenticated host
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 200 {object} resdto.ListingMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.listingCommands.CreateListing(c.Request.Context(), userID, role.String(), req.ToInput())
	if err != nil {
		if errors.Is(err, commands.ErrOnlyHostsCanManage) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only hosts can create listings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(result.Code, listingMutationResponse(result))
}

// @Summary Update listing
// @Description Update a listing owned by the authenticated host
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Fields to update"
// @Success 200 {object} resdto.ListingMutationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, role, ok := requireUserContext(c)
	if !ok {
		return
	}

	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.listingCommands.UpdateListing(c.Request.Context(), id, userID, role.String(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOnlyHostsCanManage):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only hosts can update listings"})
		case errors.Is(err, queries.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(result.Code, listingMutationResponse(result))
}

func listingMutationResponse(result *commands.ListingResult) resdto.ListingMutationResponse {
	resp := resdto.ListingMutationResponse{
		Code:    result.Code,
		Success: result.Success,
		Message: result.Message,
	}
	if result.Listing != nil {
		resp.Listing = resdto.FromListingView(result.Listing)
	}
	return resp
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func requireUserContext(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, "", false
	}
	return userID, role, true
}
