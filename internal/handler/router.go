package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Listing  *api.ListingHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	Wallet   *api.WalletHandler
	Entities *api.EntitiesHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Reference resolution is gateway-facing and deliberately unauthenticated:
	// access control happened at the field that produced each stub.
	engine.POST("/entities", h.Entities.Resolve)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public catalog surface
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/listings", Handler: h.Listing.Search},
			{Method: http.MethodGet, Path: "/listings/featured", Handler: h.Listing.GetFeatured},
			{Method: http.MethodGet, Path: "/listings/:id", Handler: h.Listing.GetByID},
			{Method: http.MethodGet, Path: "/listings/:id/quote", Handler: h.Listing.Quote},
			{Method: http.MethodGet, Path: "/listings/:id/coordinates", Handler: h.Listing.GetCoordinates},
			{Method: http.MethodGet, Path: "/listings/:id/availability", Handler: h.Booking.GetAvailability},
			{Method: http.MethodGet, Path: "/listings/:id/booked-ranges", Handler: h.Booking.GetBookedRanges},
			{Method: http.MethodGet, Path: "/listings/:id/reviews", Handler: h.Review.GetListingReviews},
			{Method: http.MethodGet, Path: "/listings/:id/rating", Handler: h.Review.GetListingRating},
			{Method: http.MethodGet, Path: "/amenities", Handler: h.Listing.GetAmenities},
			{Method: http.MethodGet, Path: "/hosts/:id/rating", Handler: h.Review.GetHostRating},
		})

		hostRequired := apiGroup.Group("")
		hostRequired.Use(authMiddleware.RequireAuth())
		addRoutes(hostRequired, []route{
			{Method: http.MethodPost, Path: "/listings", Handler: h.Listing.Create},
			{Method: http.MethodPatch, Path: "/listings/:id", Handler: h.Listing.Update},
			{Method: http.MethodGet, Path: "/host/listings", Handler: h.Listing.GetHostListings},
			{Method: http.MethodGet, Path: "/listings/:id/bookings", Handler: h.Booking.GetListingBookings},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.GetGuestBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetByID},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.GetBookingReviews},
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.SubmitStayReviews},
				{Method: http.MethodPost, Path: "/:id/reviews/guest", Handler: h.Review.SubmitGuestReview},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wallet.GetBalance},
				{Method: http.MethodPost, Path: "/funds", Handler: h.Wallet.AddFunds},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
