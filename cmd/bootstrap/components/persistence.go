package components

import (
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"
	"github.com/bothrasports-ops/arena-manager/internal/infra/readstore"
	"github.com/bothrasports-ops/arena-manager/internal/infra/repository"
	"github.com/bothrasports-ops/arena-manager/internal/infra/uow"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Inventory
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Inventory writes go through WithDB, so the repository is injected
		// directly; booking writes only exist inside a transaction and are
		// reached through the unit of work.
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(shared.InventoryRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
