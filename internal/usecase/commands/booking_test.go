//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"
	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/infra/db"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/commands"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommandReads struct {
	items []shared.InventoryItemSnapshot
	err   error
}

func (s *stubCommandReads) InventoryItems(_ context.Context) ([]shared.InventoryItemSnapshot, error) {
	return s.items, s.err
}

type stubBookingRepo struct {
	created *booking.Booking
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.created = b
	return b.ID(), nil
}

type stubTx struct {
	bookings *stubBookingRepo
	reads    *stubCommandReads
}

func (s *stubTx) Bookings() shared.BookingRepository    { return s.bookings }
func (s *stubTx) Inventory() shared.InventoryRepository { return nil }
func (s *stubTx) Reads() shared.CommandReads            { return s.reads }
func (s *stubTx) DB() db.DBTX                           { return nil }

// stubUoW runs the transactional function directly; a returned error means
// nothing was committed, mirroring the rollback of the real unit of work.
type stubUoW struct {
	tx *stubTx
}

func (s *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, s.tx)
}

func (s *stubUoW) WithDB(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("not used by booking commands")
}

type stubViewStore struct {
	lastID uuid.UUID
}

func (s *stubViewStore) FindAll(_ context.Context) ([]*queries.BookingView, error) {
	panic("not used by booking commands")
}

func (s *stubViewStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.lastID = id
	return &queries.BookingView{ID: id}, nil
}

func newBookingCommands(items []shared.InventoryItemSnapshot) (commands.BookingCommands, *stubBookingRepo, *stubViewStore) {
	repo := &stubBookingRepo{}
	store := &stubViewStore{}
	uow := &stubUoW{tx: &stubTx{
		bookings: repo,
		reads:    &stubCommandReads{items: items},
	}}
	return commands.NewBookingCommands(uow, store), repo, store
}

func TestBookingCommandsCreateBooking(t *testing.T) {
	ctx := context.Background()

	redBull := shared.InventoryItemSnapshot{ID: uuid.New(), Name: "Red Bull", Price: 125}
	water := shared.InventoryItemSnapshot{ID: uuid.New(), Name: "Water", Price: 20}

	baseReq := func() reqdto.CreateBookingRequest {
		return reqdto.CreateBookingRequest{
			CustomerName:  "Rahul Verma",
			PhoneNumber:   "9876543210",
			Platform:      string(booking.PlatformPlayo),
			BookingAmount: 500,
		}
	}

	t.Run("snapshots current inventory prices into the lines", func(t *testing.T) {
		cmds, repo, store := newBookingCommands([]shared.InventoryItemSnapshot{redBull, water})

		req := baseReq()
		req.Drinks = []reqdto.DrinkSelectionRequest{
			{DrinkID: redBull.ID, Quantity: 2},
			{DrinkID: water.ID, Quantity: 1},
		}

		view, err := cmds.CreateBooking(ctx, req)
		require.NoError(t, err)

		require.NotNil(t, repo.created)
		lines := repo.created.Drinks()
		require.Len(t, lines, 2)
		assert.Equal(t, redBull.ID, lines[0].DrinkID())
		assert.Equal(t, int64(125), lines[0].PriceAtTime())
		assert.Equal(t, int64(20), lines[1].PriceAtTime())
		// 500 base + 2*125 + 1*20
		assert.Equal(t, int64(770), repo.created.TotalAmount())

		// Read-after-write returns the persisted view for the created id.
		assert.Equal(t, repo.created.ID(), store.lastID)
		assert.Equal(t, repo.created.ID(), view.ID)
	})

	t.Run("drinks against an empty inventory are rejected", func(t *testing.T) {
		cmds, repo, _ := newBookingCommands(nil)

		req := baseReq()
		req.Drinks = []reqdto.DrinkSelectionRequest{{DrinkID: uuid.New(), Quantity: 1}}

		_, err := cmds.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, commands.ErrInventoryEmpty)
		assert.Nil(t, repo.created)
	})

	t.Run("a booking without drinks never touches inventory", func(t *testing.T) {
		cmds, repo, _ := newBookingCommands(nil)

		_, err := cmds.CreateBooking(ctx, baseReq())
		require.NoError(t, err)

		require.NotNil(t, repo.created)
		assert.Empty(t, repo.created.Drinks())
		assert.Equal(t, int64(500), repo.created.TotalAmount())
	})

	t.Run("unknown drink id is rejected", func(t *testing.T) {
		cmds, repo, _ := newBookingCommands([]shared.InventoryItemSnapshot{redBull})

		req := baseReq()
		req.Drinks = []reqdto.DrinkSelectionRequest{{DrinkID: uuid.New(), Quantity: 1}}

		_, err := cmds.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, commands.ErrDrinkNotFound)
		assert.Nil(t, repo.created)
	})

	t.Run("domain validation failures surface as validation errors", func(t *testing.T) {
		cmds, repo, _ := newBookingCommands([]shared.InventoryItemSnapshot{redBull})

		req := baseReq()
		req.CustomerName = "   "

		_, err := cmds.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, commands.ErrBookingValidation)
		assert.Nil(t, repo.created)
	})

	t.Run("repository failure surfaces as a database error", func(t *testing.T) {
		cmds, repo, _ := newBookingCommands([]shared.InventoryItemSnapshot{redBull})
		repo.err = assert.AnError

		_, err := cmds.CreateBooking(ctx, baseReq())
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
