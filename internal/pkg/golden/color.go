package golden

import (
	"fmt"
	"math"
)

// GoldenAngle — золотой угол в градусах (360° / φ²).
const GoldenAngle = 137.50776405003785

// Перцептивные значения OKLCH по умолчанию.
const (
	DefaultLightness = 0.78 // L, 0..1
	DefaultChroma    = 0.16 // C, 0..~0.4
)

// GoldenHue возвращает оттенок (0..360) с номером index, повёрнутый на золотой угол от baseHue.
func GoldenHue(index int, baseHue float64) float64 {
	hue := math.Mod(baseHue+float64(index)*GoldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}

// OKLCH форматирует цвет "oklch(L C H)": L и C — с precision знаками, H — с одним.
func OKLCH(lightness, chroma, hueDeg float64, precision int) string {
	return fmt.Sprintf("oklch(%s %s %s)",
		formatFixed(lightness, precision), formatFixed(chroma, precision), formatFixed(hueDeg, 1))
}

// HueOptions — параметры палитры.
type HueOptions struct {
	BaseHue   float64 `json:"base_hue"`
	Lightness float64 `json:"lightness"`
	Chroma    float64 `json:"chroma"`
	Precision int     `json:"precision"`
}

// DefaultHueOptions: оттенок 0, L 0.78, C 0.16, 3 знака.
func DefaultHueOptions() HueOptions {
	return HueOptions{Lightness: DefaultLightness, Chroma: DefaultChroma, Precision: DefaultPrecision}
}

// GoldenHueScale возвращает floor(steps) цветов OKLCH, оттенки которых разнесены на золотой угол.
// steps < 1 или не конечное число — ErrStepsOutOfRange.
func GoldenHueScale(steps float64, opts HueOptions) ([]string, error) {
	if math.IsNaN(steps) || math.IsInf(steps, 0) || steps < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrStepsOutOfRange, steps)
	}
	n := int(math.Floor(steps))
	out := make([]string, n)
	for i := range n {
		out[i] = OKLCH(opts.Lightness, opts.Chroma, GoldenHue(i, opts.BaseHue), opts.Precision)
	}
	return out, nil
}
