package kernel_test

import (
	"encoding/json"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			id := kernel.NewUUID()
			_, dup := seen[id.String()]
			require.False(t, dup)
			seen[id.String()] = struct{}{}
		}
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	for _, in := range []string{
		canonical,
		"{550e8400-e29b-41d4-a716-446655440000}",
		"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
		"550e8400e29b41d4a716446655440000",
	} {
		t.Run(in, func(t *testing.T) {
			id, err := kernel.UUIDFromString(in)

			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUID_MarshalJSON(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		ID kernel.UUID `json:"id"`
	}{ID: id})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"550e8400-e29b-41d4-a716-446655440000"}`, string(data))
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b, err := kernel.UUIDFromString(a.String())
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
}
