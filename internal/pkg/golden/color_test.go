package golden

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenHue(t *testing.T) {
	assert.Equal(t, 0.0, GoldenHue(0, 0))
	assert.InDelta(t, GoldenAngle, GoldenHue(1, 0), 1e-9)
	assert.InDelta(t, math.Mod(3*GoldenAngle, 360), GoldenHue(3, 0), 1e-9)
	assert.InDelta(t, 350.0, GoldenHue(0, -10), 1e-9, "отрицательный оттенок заворачивается")
	assert.InDelta(t, 10.0, GoldenHue(0, 370), 1e-9)
}

func TestOKLCH(t *testing.T) {
	assert.Equal(t, "oklch(0.780 0.160 137.5)", OKLCH(0.78, 0.16, GoldenAngle, 3))
	assert.Equal(t, "oklch(0.8 0.2 0.0)", OKLCH(0.78, 0.16, 0, 1))
}

func TestGoldenHueScale(t *testing.T) {
	colors, err := GoldenHueScale(4, DefaultHueOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"oklch(0.780 0.160 0.0)",
		"oklch(0.780 0.160 137.5)",
		"oklch(0.780 0.160 275.0)",
		"oklch(0.780 0.160 52.5)",
	}, colors)
}

func TestGoldenHueScale_FractionalStepsFloor(t *testing.T) {
	colors, err := GoldenHueScale(2.7, DefaultHueOptions())
	require.NoError(t, err)
	assert.Len(t, colors, 2)
}

func TestGoldenHueScale_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		steps float64
	}{
		{name: "ноль", steps: 0},
		{name: "меньше единицы", steps: 0.5},
		{name: "отрицательное", steps: -3},
		{name: "NaN", steps: math.NaN()},
		{name: "бесконечность", steps: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := GoldenHueScale(tt.steps, DefaultHueOptions())
			assert.Nil(t, colors)
			assert.ErrorIs(t, err, ErrStepsOutOfRange)
		})
	}
}
