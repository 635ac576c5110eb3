//go:build unit

package builder

import (
	"time"

	dombooking "github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CustomerName  string
	PhoneNumber   string
	Platform      dombooking.Platform
	BookingAmount int64
	Drinks        []dombooking.DrinkLine
	ExtraHours    dombooking.ExtraHours
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		CustomerName:  gofakeit.Name(),
		PhoneNumber:   gofakeit.Phone(),
		Platform:      dombooking.PlatformPlayo,
		BookingAmount: 500,
		Drinks:        []dombooking.DrinkLine{},
		ExtraHours:    dombooking.ExtraHours{},
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithPhoneNumber(phone string) *BookingBuilder {
	b.PhoneNumber = phone
	return b
}

func (b *BookingBuilder) WithPlatform(p dombooking.Platform) *BookingBuilder {
	b.Platform = p
	return b
}

func (b *BookingBuilder) WithBookingAmount(amount int64) *BookingBuilder {
	b.BookingAmount = amount
	return b
}

func (b *BookingBuilder) WithDrink(drinkID uuid.UUID, quantity int32, priceAtTime int64) *BookingBuilder {
	b.Drinks = append(b.Drinks, dombooking.NewDrinkLine(drinkID, quantity, priceAtTime))
	return b
}

func (b *BookingBuilder) WithExtraHours(duration float64, amount int64) *BookingBuilder {
	b.ExtraHours = dombooking.ExtraHours{Enabled: true, Duration: duration, Amount: amount}
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(
		b.CustomerName,
		b.PhoneNumber,
		b.Platform,
		b.BookingAmount,
		b.Drinks,
		b.ExtraHours,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	drinks := make([]queries.DrinkLineView, len(b.Drinks))
	var total int64 = b.BookingAmount
	for i, d := range b.Drinks {
		drinks[i] = queries.DrinkLineView{
			ID:          d.ID(),
			DrinkID:     d.DrinkID(),
			Quantity:    d.Quantity(),
			PriceAtTime: d.PriceAtTime(),
		}
		total += d.Subtotal()
	}
	if b.ExtraHours.Enabled {
		total += b.ExtraHours.Amount
	}
	return &queries.BookingView{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		PhoneNumber:        b.PhoneNumber,
		Platform:           b.Platform.String(),
		BookingAmount:      b.BookingAmount,
		ExtraHoursEnabled:  b.ExtraHours.Enabled,
		ExtraHoursDuration: b.ExtraHours.Duration,
		ExtraHoursAmount:   b.ExtraHours.Amount,
		TotalAmount:        total,
		Drinks:             drinks,
		CreatedAt:          b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	drinks := make([]reqdto.DrinkSelectionRequest, len(b.Drinks))
	for i, d := range b.Drinks {
		drinks[i] = reqdto.DrinkSelectionRequest{
			DrinkID:  d.DrinkID(),
			Quantity: d.Quantity(),
		}
	}
	return reqdto.CreateBookingRequest{
		CustomerName:  b.CustomerName,
		PhoneNumber:   b.PhoneNumber,
		Platform:      b.Platform.String(),
		BookingAmount: b.BookingAmount,
		Drinks:        drinks,
		ExtraHours: reqdto.ExtraHoursRequest{
			Enabled:  b.ExtraHours.Enabled,
			Duration: b.ExtraHours.Duration,
			Amount:   b.ExtraHours.Amount,
		},
	}
}
