package commands

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/errs"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInventoryEmpty          = errs.New("inventory is empty")
	ErrDrinkNotFound           = errs.New("drink not found")
	ErrBookingValidation       = errs.New("booking validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.BookingReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, readStore queries.BookingReadStore) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

// CreateBooking snapshots each drink's current inventory price, computes the
// total and writes the booking row together with its drink-line rows in one
// transaction. A failure on either insert commits nothing, so no orphaned
// booking row can survive a partial failure.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := b.resolveDrinkLines(ctx, tx, req.Drinks)
		if err != nil {
			return err
		}

		entity, err := booking.NewBooking(
			req.CustomerName,
			req.PhoneNumber,
			req.GetPlatform(),
			req.GetBookingAmount(),
			lines,
			req.GetExtraHours(),
		)
		if err != nil {
			return errs.Mark(err, ErrBookingValidation)
		}

		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the persisted view
	view, err := b.readStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// resolveDrinkLines reads inventory inside the transaction so price
// snapshots are consistent with the write. Lines against an empty inventory
// are rejected outright; quantities clamp to a minimum of 1 in the domain.
func (b *bookingCommandsImpl) resolveDrinkLines(ctx context.Context, tx shared.Tx, selections []reqdto.DrinkSelectionRequest) ([]booking.DrinkLine, error) {
	if len(selections) == 0 {
		return []booking.DrinkLine{}, nil
	}

	items, err := tx.Reads().InventoryItems(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(items) == 0 {
		return nil, ErrInventoryEmpty
	}

	prices := make(map[uuid.UUID]int64, len(items))
	for _, item := range items {
		prices[item.ID] = item.Price
	}

	lines := make([]booking.DrinkLine, 0, len(selections))
	for _, sel := range selections {
		price, ok := prices[sel.DrinkID]
		if !ok {
			return nil, ErrDrinkNotFound
		}
		lines = append(lines, booking.NewDrinkLine(sel.DrinkID, sel.Quantity, price))
	}
	return lines, nil
}
