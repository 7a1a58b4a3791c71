package kernel_test

import (
	"math"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create geo point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(22.348624, 114.064814)

		require.NoError(t, err)
		assert.InDelta(t, 22.348624, point.Lat(), 1e-9)
		assert.InDelta(t, 114.064814, point.Lon(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"date line west", 0, -180},
			{"date line east", 0, 180},
			{"origin", 0, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject non-finite coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"NaN latitude", math.NaN(), 10},
			{"NaN longitude", 10, math.NaN()},
			{"positive infinity latitude", math.Inf(1), 10},
			{"negative infinity longitude", 10, math.Inf(-1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject out of range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude above max", 90.5, 0},
			{"latitude below min", -91, 0},
			{"longitude above max", 0, 181},
			{"longitude below min", 0, -180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})

	t.Run("constructed point passes validation", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(1, 2)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("points with same coordinates are equal", func(t *testing.T) {
		point1, _ := kernel.NewGeoPoint(22.352703, 114.079926)
		point2, _ := kernel.NewGeoPoint(22.352703, 114.079926)

		equal, err := point1.IsEqual(point2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("points with different coordinates are not equal", func(t *testing.T) {
		point1, _ := kernel.NewGeoPoint(22.352703, 114.079926)
		point2, _ := kernel.NewGeoPoint(22.348624, 114.064814)

		equal, err := point1.IsEqual(point2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(1, 2)
		var zero kernel.GeoPoint

		_, err := point.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	t.Run("should format coordinates", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(22.348624, 114.064814)

		assert.Equal(t, "GeoPoint(22.348624,114.064814)", point.String())
	})
}
