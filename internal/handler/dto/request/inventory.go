package request

type CreateInventoryItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required,gt=0"`
}

type UpdateInventoryPriceRequest struct {
	Price *int64 `json:"price" binding:"required"`
}
