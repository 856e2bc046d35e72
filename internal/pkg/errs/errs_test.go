package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("weight")
	assert.Equal(t, "value is invalid: weight", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("weight", errors.New("NaN"))
	assert.Equal(t, "value is invalid: weight (cause: NaN)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("buffer", 0, 1, 4096)

		assert.Equal(t, "value is invalid: 0 is buffer, min value is 1, max value is 4096", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("keeps message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("label", "a\nb", 0, 1, errors.New("boom"))

		assert.Contains(t, err.Error(), "a b")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "(cause: boom)")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("truck_id")
	assert.Equal(t, "value is required: truck_id", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("truck_id", errors.New("empty string"))
	assert.Equal(t, "value is required: truck_id (cause: empty string)", withCause.Error())
	require.NoError(t, err.Cause)
}
