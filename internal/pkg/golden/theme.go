package golden

import (
	"fmt"
	"strings"
)

// DefaultCSSPrecision — точность переменных --phi*.
const DefaultCSSPrecision = 6

// PhiCSS возвращает блок :root с переменными --phi, --phi-small и --phi-squared.
func PhiCSS(precision int) string {
	return fmt.Sprintf(":root{--phi:%s;--phi-small:%s;--phi-squared:%s;}",
		formatFixed(Phi, precision), formatFixed(PhiSmall, precision), formatFixed(PhiSquared, precision))
}

// Rule — селектор и упорядоченный набор деклараций.
type Rule struct {
	Selector     string `json:"selector"`
	Declarations Scale  `json:"declarations"`
}

// CSS рендерит правило в компактном виде: selector{prop:value;...}.
func (r Rule) CSS() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteByte('{')
	for _, d := range r.Declarations {
		b.WriteString(d.Key)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// RootVariables — переменные --phi* как декларативное правило :root (числа в минимальной записи).
func RootVariables() Rule {
	return Rule{
		Selector: ":root",
		Declarations: Scale{
			{Key: "--phi", Value: formatNumber(Phi)},
			{Key: "--phi-small", Value: formatNumber(PhiSmall)},
			{Key: "--phi-squared", Value: formatNumber(PhiSquared)},
		},
	}
}

// RadiusTokens строит радиусы "phi-N" → rectBase/φ^N (2 знака, px) для N от powerStart.
func RadiusTokens(c *PowerCache, steps int, rectBase, powerStart float64) Scale {
	out := make(Scale, 0, max(steps, 0))
	for i := range max(steps, 0) {
		power := powerStart + float64(i)
		out = append(out, Entry{
			Key:   "phi-" + formatNumber(power),
			Value: formatFixed(rectBase/c.Power(power), 2) + "px",
		})
	}
	return out
}

// ThemeOptions — параметры темы: палитра и радиусы.
type ThemeOptions struct {
	ColorSteps       float64 `json:"color_steps"`
	BaseHue          float64 `json:"base_hue"`
	Lightness        float64 `json:"lightness"`
	Chroma           float64 `json:"chroma"`
	Precision        int     `json:"precision"`
	RadiusSteps      int     `json:"radius_steps"`
	RectBase         float64 `json:"rect_base"`
	RadiusPowerStart float64 `json:"radius_power_start"`
}

// DefaultThemeOptions: 6 цветов, 4 радиуса от φ² для прямоугольника 100px.
func DefaultThemeOptions() ThemeOptions {
	return ThemeOptions{
		ColorSteps:       6,
		Lightness:        DefaultLightness,
		Chroma:           DefaultChroma,
		Precision:        DefaultPrecision,
		RadiusSteps:      4,
		RectBase:         100,
		RadiusPowerStart: 2,
	}
}

// Theme — декларативный результат плагина: переменные, утилиты и токены для расширения темы.
// Регистрацию в конкретном CSS-фреймворке делает внешний адаптер.
type Theme struct {
	Base         []Rule `json:"base"`
	Utilities    []Rule `json:"utilities"`
	Colors       Scale  `json:"colors"`
	BorderRadius Scale  `json:"border_radius"`
}

// BuildTheme строит тему по опциям. Ошибка — только от палитры (ErrStepsOutOfRange).
func BuildTheme(c *PowerCache, opts ThemeOptions) (Theme, error) {
	hues, err := GoldenHueScale(opts.ColorSteps, HueOptions{
		BaseHue:   opts.BaseHue,
		Lightness: opts.Lightness,
		Chroma:    opts.Chroma,
		Precision: opts.Precision,
	})
	if err != nil {
		return Theme{}, fmt.Errorf("theme colors: %w", err)
	}

	vars := make(Scale, len(hues))
	colors := make(Scale, len(hues))
	for i, clr := range hues {
		vars[i] = Entry{Key: fmt.Sprintf("--phi-color-%d", i), Value: clr}
		colors[i] = Entry{Key: fmt.Sprintf("phi-%d", i), Value: fmt.Sprintf("var(--phi-color-%d)", i)}
	}

	radii := RadiusTokens(c, opts.RadiusSteps, opts.RectBase, opts.RadiusPowerStart)
	utilities := make([]Rule, len(radii))
	for i, r := range radii {
		utilities[i] = Rule{
			Selector:     ".rounded-" + r.Key,
			Declarations: Scale{{Key: "border-radius", Value: r.Value}},
		}
	}

	return Theme{
		Base:         []Rule{{Selector: ":root", Declarations: vars}},
		Utilities:    utilities,
		Colors:       colors,
		BorderRadius: radii,
	}, nil
}

// CSS рендерит базовые правила и утилиты, по одному правилу на строку.
func (t Theme) CSS() string {
	var b strings.Builder
	for _, r := range t.Base {
		b.WriteString(r.CSS())
		b.WriteByte('\n')
	}
	for _, r := range t.Utilities {
		b.WriteString(r.CSS())
		b.WriteByte('\n')
	}
	return b.String()
}
