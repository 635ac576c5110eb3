package queries

import (
	"context"

	"github.com/google/uuid"
)

type InventoryReadStore interface {
	FindAll(ctx context.Context) ([]*InventoryItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItemView, error)
}

type InventoryQueries interface {
	List(ctx context.Context) ([]*InventoryItemView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

// List returns all items ordered by name ascending (ordering done in the
// read store).
func (q *inventoryQueriesImpl) List(ctx context.Context) ([]*InventoryItemView, error) {
	return q.store.FindAll(ctx)
}
