package kernel_test

import (
	"testing"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.NotEqual(t, uuid.Nil, id.Bytes())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("roundtrips", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects nil uuid bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	err := zero.Validate()

	require.Error(t, err)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	c := a

	assert.False(t, a.IsEqual(b))
	assert.True(t, a.IsEqual(c))
}
