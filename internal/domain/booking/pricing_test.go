//go:build unit

package booking_test

import (
	"testing"

	"github.com/bothrasports-ops/arena-manager/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	drinkID := uuid.New()

	t.Run("base amount only", func(t *testing.T) {
		total := booking.ComputeTotal(500, nil, booking.ExtraHours{})
		assert.Equal(t, int64(500), total)
	})

	t.Run("base plus drinks", func(t *testing.T) {
		drinks := []booking.DrinkLine{
			booking.NewDrinkLine(drinkID, 2, 50),
		}
		total := booking.ComputeTotal(500, drinks, booking.ExtraHours{})
		assert.Equal(t, int64(600), total)
	})

	t.Run("extra hours is a flat fee", func(t *testing.T) {
		eh := booking.ExtraHours{Enabled: true, Duration: 1.5, Amount: 200}
		total := booking.ComputeTotal(500, nil, eh)
		assert.Equal(t, int64(700), total)

		// Duration never factors into the total
		eh.Duration = 12
		assert.Equal(t, total, booking.ComputeTotal(500, nil, eh))
	})

	t.Run("disabled extra hours contributes nothing", func(t *testing.T) {
		eh := booking.ExtraHours{Enabled: false, Duration: 2, Amount: 200}
		total := booking.ComputeTotal(500, nil, eh)
		assert.Equal(t, int64(500), total)
	})

	t.Run("all components combined", func(t *testing.T) {
		drinks := []booking.DrinkLine{
			booking.NewDrinkLine(drinkID, 2, 50),
			booking.NewDrinkLine(uuid.New(), 1, 80),
		}
		eh := booking.ExtraHours{Enabled: true, Duration: 1, Amount: 150}
		total := booking.ComputeTotal(1000, drinks, eh)
		assert.Equal(t, int64(1000+100+80+150), total)
	})

	t.Run("zero everywhere", func(t *testing.T) {
		assert.Equal(t, int64(0), booking.ComputeTotal(0, nil, booking.ExtraHours{}))
	})
}
