package response

import (
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromInventoryItemView(v *queries.InventoryItemView) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:        v.ID,
		Name:      v.Name,
		Price:     v.Price,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromInventoryItemViews(views []*queries.InventoryItemView) []*InventoryItemResponse {
	out := make([]*InventoryItemResponse, len(views))
	for i, v := range views {
		out[i] = FromInventoryItemView(v)
	}
	return out
}
