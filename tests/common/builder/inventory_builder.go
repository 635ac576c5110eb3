//go:build unit

package builder

import (
	"time"

	dominventory "github.com/bothrasports-ops/arena-manager/internal/domain/inventory"
	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type InventoryItemBuilder struct {
	ID        uuid.UUID
	Name      string
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInventoryItemBuilder() *InventoryItemBuilder {
	now := time.Now()
	return &InventoryItemBuilder{
		ID:        uuid.New(),
		Name:      gofakeit.BeerName(),
		Price:     int64(gofakeit.Number(20, 200)),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *InventoryItemBuilder) WithName(name string) *InventoryItemBuilder {
	b.Name = name
	return b
}

func (b *InventoryItemBuilder) WithPrice(price int64) *InventoryItemBuilder {
	b.Price = price
	return b
}

func (b *InventoryItemBuilder) BuildDomain() (*dominventory.Item, error) {
	return dominventory.NewItem(b.Name, b.Price)
}

func (b *InventoryItemBuilder) BuildView() *queries.InventoryItemView {
	return &queries.InventoryItemView{
		ID:        b.ID,
		Name:      b.Name,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *InventoryItemBuilder) BuildDTO() reqdto.CreateInventoryItemRequest {
	return reqdto.CreateInventoryItemRequest{
		Name:  b.Name,
		Price: b.Price,
	}
}
