package golden

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestGoldenRectangle(t *testing.T) {
	c := NewPowerCache()
	tests := []struct {
		name string
		in   RectInput
		want Rect
	}{
		{name: "только ширина", in: RectInput{Width: ptr(100)}, want: Rect{Width: 100, Height: 100 * Phi}},
		{name: "только высота", in: RectInput{Height: ptr(100)}, want: Rect{Width: 100 / Phi, Height: 100}},
		{name: "уже золотой", in: RectInput{Width: ptr(100), Height: ptr(161.8034)}, want: Rect{Width: 100, Height: 161.8034}},
		{name: "высота слишком большая", in: RectInput{Width: ptr(100), Height: ptr(300)}, want: Rect{Width: 300 / Phi, Height: 300}},
		{name: "ширина слишком большая", in: RectInput{Width: ptr(100), Height: ptr(100)}, want: Rect{Width: 100, Height: 100 * Phi}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GoldenRectangle(c, tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
		})
	}
}

func TestGoldenRectangle_MissingDimension(t *testing.T) {
	_, err := GoldenRectangle(NewPowerCache(), RectInput{})
	assert.ErrorIs(t, err, ErrMissingDimension)
}

func TestGoldenCornerRadius(t *testing.T) {
	c := NewPowerCache()
	card := Rect{Width: 400, Height: 250}

	assert.InDelta(t, 95.4915, GoldenCornerRadius(c, card, DefaultRadiusOptions()), 1e-4)
	assert.InDelta(t, 250/Phi, GoldenCornerRadius(c, card, RadiusOptions{Power: 1}), 1e-9)
}
