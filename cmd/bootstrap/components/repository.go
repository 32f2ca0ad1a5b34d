package components

import (
	"residesk/internal/infra/repository"
	"residesk/internal/usecase/commands"
	"residesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.AdminUserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewApartmentRepository,
			fx.As(new(queries.ApartmentReadStore)),
		),
		fx.Annotate(
			repository.NewVisitorPassRepository,
			fx.As(new(commands.VisitorPassRepository)),
			fx.As(new(queries.VisitorPassReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewAmenityRepository,
			fx.As(new(commands.AmenityRepository)),
			fx.As(new(queries.AmenityReadStore)),
		),
		fx.Annotate(
			repository.NewComplaintRepository,
			fx.As(new(commands.ComplaintRepository)),
			fx.As(new(queries.ComplaintReadStore)),
		),
		fx.Annotate(
			repository.NewAnnouncementRepository,
			fx.As(new(commands.AnnouncementRepository)),
			fx.As(new(queries.AnnouncementReadStore)),
		),
		fx.Annotate(
			repository.NewListingRepository,
			fx.As(new(commands.ListingRepository)),
			fx.As(new(queries.ListingReadStore)),
		),
		fx.Annotate(
			repository.NewHouseholdRepository,
			fx.As(new(commands.HouseholdRepository)),
			fx.As(new(queries.HouseholdReadStore)),
		),
	),
)
