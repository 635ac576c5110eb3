package queries

import (
	"context"
	"math"
	"strings"

	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// UnknownItemName is rendered for drink lines whose inventory item has been
// deleted since the booking was made. The line's snapshot stays intact.
const UnknownItemName = "Unknown item"

type BookingReadStore interface {
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context, filter BookingFilter) (*BookingListResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingDetailView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	inventory InventoryReadStore
}

func NewBookingQueries(bookings BookingReadStore, inventory InventoryReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		inventory: inventory,
	}
}

// List returns the filtered set newest-first, with aggregate stats over
// exactly that set. The whole history is held in memory; the front desk's
// volume never warrants pagination.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) (*BookingListResult, error) {
	all, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*BookingView, 0, len(all))
	for _, b := range all {
		if matchesFilter(b, filter) {
			filtered = append(filtered, b)
		}
	}

	return &BookingListResult{
		Bookings: filtered,
		Stats:    computeStats(filtered),
	}, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingDetailView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	items, err := q.inventory.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}

	lines := make([]DrinkBreakdownView, len(b.Drinks))
	var drinksTotal int64
	for i, d := range b.Drinks {
		name, ok := names[d.DrinkID]
		if !ok {
			name = UnknownItemName
		}
		subtotal := d.PriceAtTime * int64(d.Quantity)
		drinksTotal += subtotal
		lines[i] = DrinkBreakdownView{
			ID:          d.ID,
			DrinkID:     d.DrinkID,
			DrinkName:   name,
			Quantity:    d.Quantity,
			PriceAtTime: d.PriceAtTime,
			Subtotal:    subtotal,
		}
	}

	return &BookingDetailView{
		Booking:     b,
		Lines:       lines,
		DrinksTotal: drinksTotal,
	}, nil
}

// The search term is matched as typed, whitespace included, so a trailing
// space narrows the match instead of being ignored.
func matchesFilter(b *BookingView, filter BookingFilter) bool {
	search := filter.Search
	if search != "" {
		nameMatch := strings.Contains(strings.ToLower(b.CustomerName), strings.ToLower(search))
		phoneMatch := strings.Contains(b.PhoneNumber, search)
		if !nameMatch && !phoneMatch {
			return false
		}
	}

	platform := strings.TrimSpace(filter.Platform)
	if platform == "" || strings.EqualFold(platform, PlatformAll) {
		return true
	}
	return b.Platform == platform
}

func computeStats(bookings []*BookingView) BookingStats {
	stats := BookingStats{Count: len(bookings)}
	for _, b := range bookings {
		stats.TotalRevenue += b.TotalAmount
	}
	if stats.Count > 0 {
		stats.AverageAmount = int64(math.Round(float64(stats.TotalRevenue) / float64(stats.Count)))
	}
	return stats
}
