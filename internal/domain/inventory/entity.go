package inventory

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name is required")
	ErrNonPositivePrice = errors.New("item price must be positive")
	ErrNegativePrice    = errors.New("item price cannot be negative")
)

// Item is a drink offered at the counter. Price is mutable; bookings keep
// their own snapshots, so items can be repriced or deleted freely.
type Item struct {
	id    uuid.UUID
	name  string
	price int64
}

func NewItem(name string, price int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price <= 0 {
		return nil, ErrNonPositivePrice
	}
	return &Item{
		id:    uuid.New(),
		name:  name,
		price: price,
	}, nil
}

func ReconstructItem(id uuid.UUID, name string, price int64) *Item {
	return &Item{
		id:    id,
		name:  name,
		price: price,
	}
}

func (i *Item) ID() uuid.UUID { return i.id }
func (i *Item) Name() string  { return i.name }
func (i *Item) Price() int64  { return i.price }

// ValidatePrice guards price updates from the settings view. Unlike NewItem,
// a zero price is allowed on update.
func ValidatePrice(price int64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}
