//go:build unit

package repository_test

import (
	"context"
	"testing"

	"github.com/bothrasports-ops/arena-manager/internal/infra/repository"
	"github.com/bothrasports-ops/arena-manager/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

type recordingDBTX struct {
	execs []execCall
}

func (f *recordingDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *recordingDBTX) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	panic("unexpected Query")
}

func (f *recordingDBTX) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func TestBookingRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("line rows carry their form position", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()
		third := uuid.New()

		b, err := builder.NewBookingBuilder().
			WithDrink(first, 1, 50).
			WithDrink(second, 2, 80).
			WithDrink(third, 1, 60).
			BuildDomain()
		require.NoError(t, err)

		dbtx := &recordingDBTX{}
		id, err := repository.NewBookingRepository().Create(ctx, dbtx, b)
		require.NoError(t, err)
		assert.Equal(t, b.ID(), id)

		// One booking insert plus one insert per line
		require.Len(t, dbtx.execs, 4)

		wantDrinks := []uuid.UUID{first, second, third}
		for i, call := range dbtx.execs[1:] {
			require.Len(t, call.args, 6)
			assert.Equal(t, wantDrinks[i], call.args[2], "drink id at position %d", i)
			assert.Equal(t, i, call.args[5], "position column")
		}
	})

	t.Run("booking without drinks writes a single row", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		dbtx := &recordingDBTX{}
		_, err = repository.NewBookingRepository().Create(ctx, dbtx, b)
		require.NoError(t, err)
		assert.Len(t, dbtx.execs, 1)
	})
}
