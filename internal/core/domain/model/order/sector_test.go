package order_test

import (
	"fmt"
	"testing"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSector_Pipeline(t *testing.T) {
	t.Run("follows the fixed sequence", func(t *testing.T) {
		sequence := []order.Sector{
			order.Received,
			order.Sorting,
			order.Washing,
			order.Drying,
			order.Ironing,
			order.Ready,
			order.Shipped,
			order.Delivered,
		}

		for i := 0; i < len(sequence)-1; i++ {
			next, err := sequence[i].Next()
			require.NoError(t, err)
			assert.Equal(t, sequence[i+1], next, "next of %s", sequence[i])
		}
	})

	t.Run("terminal sectors have no next", func(t *testing.T) {
		for _, s := range []order.Sector{order.Delivered, order.Cancelled} {
			_, err := s.Next()
			require.Error(t, err)
			assert.True(t, s.IsTerminal())
		}
	})
}

func TestSector_Validate(t *testing.T) {
	for _, s := range []order.Sector{
		order.Received, order.Sorting, order.Washing, order.Drying,
		order.Ironing, order.Ready, order.Shipped, order.Delivered, order.Cancelled,
	} {
		t.Run(fmt.Sprintf("accepts %s", s), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Sector(42).Validate())
}

func TestSector_ValidateCompleteFrom(t *testing.T) {
	t.Run("exact sector match", func(t *testing.T) {
		require.NoError(t, order.Washing.ValidateCompleteFrom(order.Washing))
		require.NoError(t, order.Ready.ValidateCompleteFrom(order.Ready))
	})

	t.Run("received order may complete sorting", func(t *testing.T) {
		require.NoError(t, order.Sorting.ValidateCompleteFrom(order.Received))
		require.NoError(t, order.Sorting.ValidateCompleteFrom(order.Sorting))
	})

	t.Run("out of order completion rejected", func(t *testing.T) {
		err := order.Drying.ValidateCompleteFrom(order.Washing)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("repeat completion rejected", func(t *testing.T) {
		// After washing completes the order is in drying; completing washing
		// again must fail.
		err := order.Washing.ValidateCompleteFrom(order.Drying)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("non completable sectors rejected", func(t *testing.T) {
		require.Error(t, order.Received.ValidateCompleteFrom(order.Received))
		require.Error(t, order.Delivered.ValidateCompleteFrom(order.Delivered))
		require.Error(t, order.Cancelled.ValidateCompleteFrom(order.Cancelled))
	})
}

func TestSectorFromString(t *testing.T) {
	s, err := order.SectorFromString("ironing")
	require.NoError(t, err)
	assert.Equal(t, order.Ironing, s)

	_, err = order.SectorFromString("folding")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.SectorFromString("unknown")
	require.Error(t, err)
}
