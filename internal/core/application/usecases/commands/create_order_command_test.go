package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validOrigin := []string{"22.348624", "114.064814"}
	validDestination := []string{"22.352703", "114.079926"}

	t.Run("should create command from valid coordinate pairs", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validOrigin, validDestination)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.InDelta(t, 22.348624, cmd.Origin().Lat(), 1e-9)
		assert.InDelta(t, 114.064814, cmd.Origin().Lon(), 1e-9)
		assert.InDelta(t, 22.352703, cmd.Destination().Lat(), 1e-9)
		assert.InDelta(t, 114.079926, cmd.Destination().Lon(), 1e-9)
	})

	t.Run("should reject pairs of wrong length regardless of content", func(t *testing.T) {
		testCases := []struct {
			name                string
			origin, destination []string
		}{
			{"empty origin", []string{}, validDestination},
			{"nil origin", nil, validDestination},
			{"single element origin", []string{"22.348624"}, validDestination},
			{"three element destination", validOrigin, []string{"22", "114", "7"}},
			{"wrong length with non-numeric garbage", []string{"a", "b", "c"}, validDestination},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(tc.origin, tc.destination)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject non-numeric coordinate values", func(t *testing.T) {
		testCases := []struct {
			name                string
			origin, destination []string
		}{
			{"non-numeric origin latitude", []string{"abc", "114.064814"}, validDestination},
			{"non-numeric origin longitude", []string{"22.348624", ""}, validDestination},
			{"non-numeric destination", validOrigin, []string{"22.352703", "not-a-number"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(tc.origin, tc.destination)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject coordinates outside valid ranges", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand([]string{"122.348624", "114.064814"}, validDestination)

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
