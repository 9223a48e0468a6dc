package golden

import (
	"fmt"
	"math"
)

// rectEpsilon — допуск сравнения отношения сторон с φ.
const rectEpsilon = 0.0001

// Rect — размеры прямоугольника.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectInput — известные стороны; nil означает «посчитать».
type RectInput struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// GoldenRectangle достраивает прямоугольник до отношения height/width = φ.
// Если заданы обе стороны и отношение уже φ (с допуском), они возвращаются как есть;
// иначе меньшая по значимости сторона пересчитывается.
func GoldenRectangle(c *PowerCache, in RectInput) (Rect, error) {
	ratio := c.Power(1)
	switch {
	case in.Width == nil && in.Height == nil:
		return Rect{}, fmt.Errorf("golden rectangle: %w", ErrMissingDimension)
	case in.Width != nil && in.Height != nil:
		w, h := *in.Width, *in.Height
		current := h / w
		if math.Abs(current-ratio) < rectEpsilon {
			return Rect{Width: w, Height: h}, nil
		}
		if current > ratio {
			return Rect{Width: h / ratio, Height: h}, nil
		}
		return Rect{Width: w, Height: w * ratio}, nil
	case in.Width != nil:
		return Rect{Width: *in.Width, Height: *in.Width * ratio}, nil
	default:
		return Rect{Width: *in.Height / ratio, Height: *in.Height}, nil
	}
}

// RadiusOptions — степень φ, на которую делится меньшая сторона.
type RadiusOptions struct {
	Power float64 `json:"power"`
}

// DefaultRadiusOptions: power 2 (≈0.382 меньшей стороны).
func DefaultRadiusOptions() RadiusOptions {
	return RadiusOptions{Power: 2}
}

// GoldenCornerRadius — радиус скругления: меньшая сторона / φ^power.
// Карточка 400×250 при power 2 даёт ≈95.5px.
func GoldenCornerRadius(c *PowerCache, r Rect, opts RadiusOptions) float64 {
	return math.Min(r.Width, r.Height) / c.Power(opts.Power)
}
