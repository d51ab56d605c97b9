package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validItemInputs() []commands.OrderItemInput {
	return []commands.OrderItemInput{
		{PieceType: order.PieceClothing, Quantity: 10},
		{PieceType: order.PieceRug, Quantity: 2, Notes: "persian, handle with care"},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	promisedAt := time.Now().Add(48 * time.Hour)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), nil, "ACME Hotel", validItemInputs(), promisedAt, "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.Items(), 2)
	})

	t.Run("client name is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), nil, "", validItemInputs(), promisedAt, "")

		require.ErrorIs(t, err, commands.ErrClientNameIsRequired)
	})

	t.Run("items are required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), nil, "ACME Hotel", nil, promisedAt, "")

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("zero promise deadline", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), nil, "ACME Hotel", validItemInputs(), time.Time{}, "")

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
