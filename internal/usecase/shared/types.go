package shared

import (
	"github.com/google/uuid"
)

type InventoryItemSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price int64
}
