package shared

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	"github.com/bothrasports-ops/arena-manager/internal/domain/inventory"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Inventory() InventoryRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal snapshot reads the write side needs for
// validation and price snapshotting.
type CommandReads interface {
	InventoryItems(ctx context.Context) ([]InventoryItemSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, item *inventory.Item) (uuid.UUID, error)
	UpdatePrice(ctx context.Context, dbtx db.DBTX, id uuid.UUID, price int64) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
