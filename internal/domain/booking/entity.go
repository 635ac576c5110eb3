package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrEmptyPhoneNumber  = errors.New("phone number is required")
	ErrInvalidPlatform   = errors.New("invalid platform")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

// ExtraHours is a flat fee toggled on top of the base amount. Duration is
// informational only and never enters the total.
type ExtraHours struct {
	Enabled  bool
	Duration float64
	Amount   int64
}

// DrinkLine is a drink selection with the item's price snapshotted at
// booking time. PriceAtTime is never recomputed from current inventory.
// Each line carries its own id so removals don't reshuffle identity.
type DrinkLine struct {
	id          uuid.UUID
	drinkID     uuid.UUID
	quantity    int32
	priceAtTime int64
}

// NewDrinkLine clamps quantity to a minimum of 1 and floors a negative
// price snapshot to zero, mirroring the lenient numeric policy of the
// creation form.
func NewDrinkLine(drinkID uuid.UUID, quantity int32, priceAtTime int64) DrinkLine {
	if quantity < 1 {
		quantity = 1
	}
	if priceAtTime < 0 {
		priceAtTime = 0
	}
	return DrinkLine{
		id:          uuid.New(),
		drinkID:     drinkID,
		quantity:    quantity,
		priceAtTime: priceAtTime,
	}
}

func ReconstructDrinkLine(id, drinkID uuid.UUID, quantity int32, priceAtTime int64) DrinkLine {
	return DrinkLine{
		id:          id,
		drinkID:     drinkID,
		quantity:    quantity,
		priceAtTime: priceAtTime,
	}
}

func (d DrinkLine) ID() uuid.UUID      { return d.id }
func (d DrinkLine) DrinkID() uuid.UUID { return d.drinkID }
func (d DrinkLine) Quantity() int32    { return d.quantity }
func (d DrinkLine) PriceAtTime() int64 { return d.priceAtTime }

func (d DrinkLine) Subtotal() int64 {
	return d.priceAtTime * int64(d.quantity)
}

type Booking struct {
	id            uuid.UUID
	customerName  string
	phoneNumber   string
	platform      Platform
	bookingAmount int64
	drinks        []DrinkLine
	extraHours    ExtraHours
	totalAmount   int64
	createdAt     time.Time
}

// NewBooking validates required fields and fixes the total at creation.
func NewBooking(
	customerName string,
	phoneNumber string,
	platform Platform,
	bookingAmount int64,
	drinks []DrinkLine,
	extraHours ExtraHours,
) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	phoneNumber = strings.TrimSpace(phoneNumber)

	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if phoneNumber == "" {
		return nil, ErrEmptyPhoneNumber
	}
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}
	if bookingAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if extraHours.Amount < 0 || extraHours.Duration < 0 {
		return nil, ErrNegativeAmount
	}

	if drinks == nil {
		drinks = []DrinkLine{}
	}

	return &Booking{
		id:            uuid.New(),
		customerName:  customerName,
		phoneNumber:   phoneNumber,
		platform:      platform,
		bookingAmount: bookingAmount,
		drinks:        drinks,
		extraHours:    extraHours,
		totalAmount:   ComputeTotal(bookingAmount, drinks, extraHours),
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	customerName, phoneNumber string,
	platform Platform,
	bookingAmount int64,
	drinks []DrinkLine,
	extraHours ExtraHours,
	totalAmount int64,
	createdAt time.Time,
) *Booking {
	if drinks == nil {
		drinks = []DrinkLine{}
	}
	return &Booking{
		id:            id,
		customerName:  customerName,
		phoneNumber:   phoneNumber,
		platform:      platform,
		bookingAmount: bookingAmount,
		drinks:        drinks,
		extraHours:    extraHours,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CustomerName() string   { return b.customerName }
func (b *Booking) PhoneNumber() string    { return b.phoneNumber }
func (b *Booking) Platform() Platform     { return b.platform }
func (b *Booking) BookingAmount() int64   { return b.bookingAmount }
func (b *Booking) Drinks() []DrinkLine    { return b.drinks }
func (b *Booking) ExtraHours() ExtraHours { return b.extraHours }
func (b *Booking) TotalAmount() int64     { return b.totalAmount }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

// DrinksTotal is the drinks-only share of the total.
func (b *Booking) DrinksTotal() int64 {
	var sum int64
	for _, d := range b.drinks {
		sum += d.Subtotal()
	}
	return sum
}
