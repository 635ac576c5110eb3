package repository

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts the booking row and its drink-line rows. Callers run it
// inside a transaction so a line failure rolls the booking back too.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	extra := b.ExtraHours()

	_, err := dbtx.Exec(ctx, `
		INSERT INTO bookings (
			id, customer_name, phone_number, platform, booking_amount,
			extra_hours_enabled, extra_hours_duration, extra_hours_amount,
			total_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`,
		b.ID(), b.CustomerName(), b.PhoneNumber(), b.Platform().String(),
		b.BookingAmount(), extra.Enabled, extra.Duration, extra.Amount,
		b.TotalAmount(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	// Position records form order; line ids are random and carry no
	// ordering of their own.
	for i, line := range b.Drinks() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO booking_drinks (id, booking_id, drink_id, quantity, price_at_time, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID(), b.ID(), line.DrinkID(), line.Quantity(), line.PriceAtTime(), i,
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create booking drink line", err)
		}
	}

	return b.ID(), nil
}
