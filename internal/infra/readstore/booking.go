package readstore

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/pgconv"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Bookings are read joined with their drink lines in one query; a booking
// without lines yields a single row with NULL line columns and maps to an
// empty slice.
const bookingSelect = `
SELECT b.id, b.customer_name, b.phone_number, b.platform, b.booking_amount,
       b.extra_hours_enabled, b.extra_hours_duration, b.extra_hours_amount,
       b.total_amount, b.created_at,
       d.id, d.drink_id, d.quantity, d.price_at_time
FROM bookings b
LEFT JOIN booking_drinks d ON d.booking_id = b.id`

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.dbtx.Query(ctx,
		bookingSelect+` ORDER BY b.created_at DESC, b.id, d.position`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views, err := collectBookingRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking rows", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	rows, err := r.dbtx.Query(ctx,
		bookingSelect+` WHERE b.id = $1 ORDER BY d.position`,
		id,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	defer rows.Close()

	views, err := collectBookingRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan booking rows", err)
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func collectBookingRows(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := []*queries.BookingView{}
	index := map[uuid.UUID]*queries.BookingView{}

	for rows.Next() {
		var (
			view        queries.BookingView
			createdAt   pgtype.Timestamptz
			lineID      pgtype.UUID
			drinkID     pgtype.UUID
			quantity    pgtype.Int4
			priceAtTime pgtype.Int8
		)
		err := rows.Scan(
			&view.ID, &view.CustomerName, &view.PhoneNumber, &view.Platform,
			&view.BookingAmount, &view.ExtraHoursEnabled, &view.ExtraHoursDuration,
			&view.ExtraHoursAmount, &view.TotalAmount, &createdAt,
			&lineID, &drinkID, &quantity, &priceAtTime,
		)
		if err != nil {
			return nil, err
		}

		current, ok := index[view.ID]
		if !ok {
			view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
			view.Drinks = []queries.DrinkLineView{}
			current = &view
			index[view.ID] = current
			views = append(views, current)
		}

		if lineID.Valid {
			current.Drinks = append(current.Drinks, queries.DrinkLineView{
				ID:          pgconv.UUIDFromPgtype(lineID),
				DrinkID:     pgconv.UUIDFromPgtype(drinkID),
				Quantity:    quantity.Int32,
				PriceAtTime: priceAtTime.Int64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
