package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewWalletHandler,
		api.NewEntityRegistry,
		api.NewEntitiesHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	listing *api.ListingHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	wallet *api.WalletHandler,
	entities *api.EntitiesHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Listing:  listing,
		Booking:  booking,
		Review:   review,
		Wallet:   wallet,
		Entities: entities,
	}
}
