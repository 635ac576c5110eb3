package request

import (
	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"

	"github.com/google/uuid"
)

type DrinkSelectionRequest struct {
	DrinkID  uuid.UUID `json:"drink_id" binding:"required"`
	Quantity int32     `json:"quantity"`
}

type ExtraHoursRequest struct {
	Enabled  bool    `json:"enabled"`
	Duration float64 `json:"duration"`
	Amount   int64   `json:"amount"`
}

type CreateBookingRequest struct {
	CustomerName  string                  `json:"customer_name" binding:"required"`
	PhoneNumber   string                  `json:"phone_number" binding:"required"`
	Platform      string                  `json:"platform"`
	BookingAmount int64                   `json:"booking_amount"`
	Drinks        []DrinkSelectionRequest `json:"drinks"`
	ExtraHours    ExtraHoursRequest       `json:"extra_hours"`
}

// GetPlatform falls back to the form default when the field is omitted.
func (r CreateBookingRequest) GetPlatform() booking.Platform {
	if r.Platform == "" {
		return booking.DefaultPlatform
	}
	return booking.Platform(r.Platform)
}

// GetBookingAmount degrades malformed (negative) input to zero instead of
// blocking submission.
func (r CreateBookingRequest) GetBookingAmount() int64 {
	if r.BookingAmount < 0 {
		return 0
	}
	return r.BookingAmount
}

func (r CreateBookingRequest) GetExtraHours() booking.ExtraHours {
	eh := booking.ExtraHours{
		Enabled:  r.ExtraHours.Enabled,
		Duration: r.ExtraHours.Duration,
		Amount:   r.ExtraHours.Amount,
	}
	if eh.Duration < 0 {
		eh.Duration = 0
	}
	if eh.Amount < 0 {
		eh.Amount = 0
	}
	return eh
}
