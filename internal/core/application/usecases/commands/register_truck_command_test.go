package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTruckCommand(t *testing.T) {
	t.Run("valid_payload", func(t *testing.T) {
		// When
		cmd, err := commands.NewRegisterTruckCommand("T1", 250, 250, 600, 3500, []string{"p1", "p2"})

		// Then
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "T1", cmd.Truck().ID())
		assert.Equal(t, 2, cmd.Truck().PackageCount())
		assert.InDelta(t, 600.0, cmd.Truck().Capacity().Length(), 0)
	})

	t.Run("invalid_payload_reports_every_problem", func(t *testing.T) {
		_, err := commands.NewRegisterTruckCommand("", 0, 1, 1, 0, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "width")
		assert.Contains(t, err.Error(), "max_weight")
	})

	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var cmd commands.RegisterTruckCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterTruckCommandIsNotConstructed)
	})
}
