package repository

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/domain/inventory"
	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) Create(ctx context.Context, dbtx db.DBTX, item *inventory.Item) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO inventory (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())`,
		item.ID(), item.Name(), item.Price(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create inventory item", err)
	}
	return item.ID(), nil
}

func (r *InventoryRepository) UpdatePrice(ctx context.Context, dbtx db.DBTX, id uuid.UUID, price int64) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE inventory SET price = $2, updated_at = now() WHERE id = $1`,
		id, price,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update inventory price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Delete does not touch booking_drinks: historical lines keep their price
// snapshots and resolve to a placeholder name on read.
func (r *InventoryRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete inventory item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
