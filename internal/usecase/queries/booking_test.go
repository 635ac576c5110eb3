//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"
	"github.com/bothrasports-ops/arena-manager/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingReadStore struct {
	views []*queries.BookingView
}

func (s *stubBookingReadStore) FindAll(_ context.Context) ([]*queries.BookingView, error) {
	return s.views, nil
}

func (s *stubBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	for _, v := range s.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
}

type stubInventoryReadStore struct {
	views []*queries.InventoryItemView
}

func (s *stubInventoryReadStore) FindAll(_ context.Context) ([]*queries.InventoryItemView, error) {
	return s.views, nil
}

func (s *stubInventoryReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.InventoryItemView, error) {
	for _, v := range s.views {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
}

func newQueries(bookings []*queries.BookingView, items []*queries.InventoryItemView) queries.BookingQueries {
	return queries.NewBookingQueries(
		&stubBookingReadStore{views: bookings},
		&stubInventoryReadStore{views: items},
	)
}

func TestBookingQueriesList(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mkView := func(name, phone string, platform booking.Platform, amount int64, age time.Duration) *queries.BookingView {
		return builder.NewBookingBuilder().
			WithCustomerName(name).
			WithPhoneNumber(phone).
			WithPlatform(platform).
			WithBookingAmount(amount).
			WithCreatedAt(now.Add(-age)).
			BuildView()
	}

	// Read store returns newest first; the query layer preserves that order.
	views := []*queries.BookingView{
		mkView("Rahul Verma", "9876543210", booking.PlatformPlayo, 500, 0),
		mkView("Priya Shah", "9123456780", booking.PlatformHuddle, 750, time.Hour),
		mkView("Arjun Mehta", "9988776655", booking.PlatformOffline, 1000, 2*time.Hour),
	}

	t.Run("empty filter returns everything in store order", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{})
		require.NoError(t, err)

		require.Len(t, result.Bookings, 3)
		assert.Equal(t, "Rahul Verma", result.Bookings[0].CustomerName)
		assert.Equal(t, "Priya Shah", result.Bookings[1].CustomerName)
		assert.Equal(t, "Arjun Mehta", result.Bookings[2].CustomerName)
	})

	t.Run("all sentinel matches every platform case-insensitively", func(t *testing.T) {
		q := newQueries(views, nil)
		for _, p := range []string{"all", "ALL", "All"} {
			result, err := q.List(ctx, queries.BookingFilter{Platform: p})
			require.NoError(t, err)
			assert.Len(t, result.Bookings, 3, p)
		}
	})

	t.Run("platform filter is exact", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{Platform: "Huddle"})
		require.NoError(t, err)

		require.Len(t, result.Bookings, 1)
		assert.Equal(t, "Priya Shah", result.Bookings[0].CustomerName)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{Search: "rahul"})
		require.NoError(t, err)

		require.Len(t, result.Bookings, 1)
		assert.Equal(t, "Rahul Verma", result.Bookings[0].CustomerName)
	})

	t.Run("search matches phone substring", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{Search: "912345"})
		require.NoError(t, err)

		require.Len(t, result.Bookings, 1)
		assert.Equal(t, "Priya Shah", result.Bookings[0].CustomerName)
	})

	t.Run("search term whitespace is significant", func(t *testing.T) {
		q := newQueries(views, nil)

		result, err := q.List(ctx, queries.BookingFilter{Search: " Verma"})
		require.NoError(t, err)
		require.Len(t, result.Bookings, 1)
		assert.Equal(t, "Rahul Verma", result.Bookings[0].CustomerName)

		result, err = q.List(ctx, queries.BookingFilter{Search: "Verma "})
		require.NoError(t, err)
		assert.Empty(t, result.Bookings)
	})

	t.Run("search and platform combine", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{Search: "Rahul", Platform: "Huddle"})
		require.NoError(t, err)

		assert.Empty(t, result.Bookings)
		assert.Equal(t, 0, result.Stats.Count)
	})

	t.Run("stats cover the filtered set only", func(t *testing.T) {
		q := newQueries(views, nil)
		result, err := q.List(ctx, queries.BookingFilter{Platform: "PlayO"})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Stats.Count)
		assert.Equal(t, int64(500), result.Stats.TotalRevenue)
		assert.Equal(t, int64(500), result.Stats.AverageAmount)
	})

	t.Run("average rounds to nearest rupee", func(t *testing.T) {
		q := newQueries([]*queries.BookingView{
			mkView("A", "111", booking.PlatformPlayo, 100, 0),
			mkView("B", "222", booking.PlatformPlayo, 101, 0),
		}, nil)
		result, err := q.List(ctx, queries.BookingFilter{})
		require.NoError(t, err)

		assert.Equal(t, int64(201), result.Stats.TotalRevenue)
		// 100.5 rounds up
		assert.Equal(t, int64(101), result.Stats.AverageAmount)
	})

	t.Run("empty set yields zero stats not NaN", func(t *testing.T) {
		q := newQueries(nil, nil)
		result, err := q.List(ctx, queries.BookingFilter{})
		require.NoError(t, err)

		assert.Equal(t, 0, result.Stats.Count)
		assert.Equal(t, int64(0), result.Stats.TotalRevenue)
		assert.Equal(t, int64(0), result.Stats.AverageAmount)
		assert.NotNil(t, result.Bookings)
	})
}

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	knownItem := builder.NewInventoryItemBuilder().WithName("Red Bull").WithPrice(125)
	deletedID := uuid.New()

	b := builder.NewBookingBuilder().
		WithBookingAmount(500).
		WithDrink(knownItem.ID, 2, 125).
		WithDrink(deletedID, 1, 60)
	view := b.BuildView()

	q := newQueries(
		[]*queries.BookingView{view},
		[]*queries.InventoryItemView{knownItem.BuildView()},
	)

	t.Run("resolves names and computes subtotals", func(t *testing.T) {
		detail, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)

		require.Len(t, detail.Lines, 2)
		assert.Equal(t, "Red Bull", detail.Lines[0].DrinkName)
		assert.Equal(t, int64(250), detail.Lines[0].Subtotal)
		assert.Equal(t, int64(310), detail.DrinksTotal)
	})

	t.Run("deleted drink renders placeholder with snapshot intact", func(t *testing.T) {
		detail, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)

		assert.Equal(t, queries.UnknownItemName, detail.Lines[1].DrinkName)
		assert.Equal(t, int64(60), detail.Lines[1].PriceAtTime)
		assert.Equal(t, int64(60), detail.Lines[1].Subtotal)
	})

	t.Run("unknown booking id surfaces not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
