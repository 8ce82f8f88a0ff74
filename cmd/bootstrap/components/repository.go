package components

import (
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	"stayhub/internal/infra/uow"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,

		// Read stores
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(queries.ListingOwnership)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),

		// Command-side snapshots
		fx.Annotate(
			readstore.NewListingSnapshots,
			fx.As(new(commands.ListingReader)),
		),
		fx.Annotate(
			readstore.NewBookingSnapshots,
			fx.As(new(commands.BookingReader)),
		),

		// Write repositories
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingWriter)),
		),
		fx.Annotate(
			repository.NewWalletRepository,
			fx.As(new(commands.FundsLedger)),
		),
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(commands.ListingWriter)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(commands.ReviewWriter)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserWriter)),
		),
	),
)
