package commands

import (
	"context"

	"github.com/bothrasports-ops/arena-manager/internal/domain/inventory"
	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/infra"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/errs"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemValidation = errs.New("inventory item validation failed")
	ErrItemNotFound   = errs.New("inventory item not found")
)

type InventoryCommands interface {
	AddItem(ctx context.Context, req reqdto.CreateInventoryItemRequest) (*queries.InventoryItemView, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type inventoryCommandsImpl struct {
	uow       shared.UnitOfWork
	repo      shared.InventoryRepository
	readStore queries.InventoryReadStore
}

func NewInventoryCommands(uow shared.UnitOfWork, repo shared.InventoryRepository, readStore queries.InventoryReadStore) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:       uow,
		repo:      repo,
		readStore: readStore,
	}
}

func (i *inventoryCommandsImpl) AddItem(ctx context.Context, req reqdto.CreateInventoryItemRequest) (*queries.InventoryItemView, error) {
	item, err := inventory.NewItem(req.Name, req.Price)
	if err != nil {
		return nil, errs.Mark(err, ErrItemValidation)
	}

	var itemID uuid.UUID
	err = i.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var createErr error
		itemID, createErr = i.repo.Create(ctx, dbtx, item)
		return createErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := i.readStore.FindByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (i *inventoryCommandsImpl) UpdatePrice(ctx context.Context, id uuid.UUID, price int64) error {
	if err := inventory.ValidatePrice(price); err != nil {
		return errs.Mark(err, ErrItemValidation)
	}

	err := i.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return i.repo.UpdatePrice(ctx, dbtx, id, price)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DeleteItem does not cascade: bookings referencing the item keep their
// price snapshots and render the line with a placeholder name.
func (i *inventoryCommandsImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := i.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return i.repo.Delete(ctx, dbtx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
