package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerName       string          `json:"customer_name"`
	PhoneNumber        string          `json:"phone_number"`
	Platform           string          `json:"platform"`
	BookingAmount      int64           `json:"booking_amount"`
	ExtraHoursEnabled  bool            `json:"extra_hours_enabled"`
	ExtraHoursDuration float64         `json:"extra_hours_duration"`
	ExtraHoursAmount   int64           `json:"extra_hours_amount"`
	TotalAmount        int64           `json:"total_amount"`
	Drinks             []DrinkLineView `json:"drinks"`
	CreatedAt          time.Time       `json:"created_at"`
}

type DrinkLineView struct {
	ID          uuid.UUID `json:"id"`
	DrinkID     uuid.UUID `json:"drink_id"`
	Quantity    int32     `json:"quantity"`
	PriceAtTime int64     `json:"price_at_time"`
}

type InventoryItemView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingStats aggregates the *filtered* booking set.
type BookingStats struct {
	Count         int   `json:"count"`
	TotalRevenue  int64 `json:"total_revenue"`
	AverageAmount int64 `json:"average_amount"`
}

// BookingFilter: empty Search matches everything; Platform accepts the
// "all" sentinel (or empty) to disable platform filtering.
type BookingFilter struct {
	Search   string
	Platform string
}

// PlatformAll is the sentinel filter value matching every platform.
const PlatformAll = "all"

type BookingListResult struct {
	Bookings []*BookingView `json:"bookings"`
	Stats    BookingStats   `json:"stats"`
}

// DrinkBreakdownView is a drink line with its name resolved against current
// inventory and its subtotal computed for display.
type DrinkBreakdownView struct {
	ID          uuid.UUID `json:"id"`
	DrinkID     uuid.UUID `json:"drink_id"`
	DrinkName   string    `json:"drink_name"`
	Quantity    int32     `json:"quantity"`
	PriceAtTime int64     `json:"price_at_time"`
	Subtotal    int64     `json:"subtotal"`
}

type BookingDetailView struct {
	Booking     *BookingView         `json:"booking"`
	Lines       []DrinkBreakdownView `json:"lines"`
	DrinksTotal int64                `json:"drinks_total"`
}
