package kernel_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	t.Run("valid_sides", func(t *testing.T) {
		// When
		d, err := kernel.NewDimensions(45, 45, 60)

		// Then
		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.InDelta(t, 45.0, d.Width(), 0)
		assert.InDelta(t, 45.0, d.Height(), 0)
		assert.InDelta(t, 60.0, d.Length(), 0)
		assert.Equal(t, "Dimensions(45x45x60)", d.String())
	})

	t.Run("non_positive_sides_are_all_reported", func(t *testing.T) {
		// When
		_, err := kernel.NewDimensions(0, -1, 10)

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "width")
		assert.Contains(t, err.Error(), "height")
		assert.NotContains(t, err.Error(), "length")
	})

	t.Run("nan_and_inf_are_invalid", func(t *testing.T) {
		_, err := kernel.NewDimensions(math.NaN(), 1, math.Inf(1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d kernel.Dimensions

		require.ErrorIs(t, d.Validate(), errs.ErrValueIsRequired)
	})
}

func TestMustDimensions_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustDimensions(1, 0, 1) })
	assert.NotPanics(t, func() { kernel.MustDimensions(1, 1, 1) })
}
