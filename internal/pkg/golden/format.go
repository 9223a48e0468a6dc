package golden

import (
	"math"
	"strconv"
)

// Единицы измерения CSS, для которых есть готовые форматтеры.
const (
	UnitRem = "rem"
	UnitPx  = "px"
	UnitEm  = "em"
	UnitVw  = "vw"
	UnitVh  = "vh"
	UnitPct = "%"
)

// DefaultPrecision — число знаков после запятой по умолчанию (для px — 0).
const DefaultPrecision = 3

// UnitPrecision возвращает точность по умолчанию для единицы: px округляется до целого.
func UnitPrecision(unit string) int {
	if unit == UnitPx {
		return 0
	}
	return DefaultPrecision
}

// roundTo округляет v до precision знаков, половину — от нуля. -0 превращается в 0.
func roundTo(v float64, precision int) float64 {
	var r float64
	if precision < 0 {
		scale := math.Pow(10, float64(-precision))
		r = math.Round(v/scale) * scale
	} else {
		scale := math.Pow(10, float64(precision))
		r = math.Round(v*scale) / scale
	}
	if r == 0 {
		return 0
	}
	return r
}

// formatNumber — минимальная запись числа без хвостовых нулей.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRounded округляет v и пишет в минимальной форме.
func formatRounded(v float64, precision int) string {
	return formatNumber(roundTo(v, precision))
}

// formatFixed пишет v ровно с precision знаками после запятой (хвостовые нули остаются).
func formatFixed(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return formatNumber(v)
	}
	return strconv.FormatFloat(roundTo(v, precision), 'f', max(precision, 0), 64)
}

// Format считает base·φ^power, округляет до precision знаков и дописывает unit как есть.
// Format(c, 1, 1, "rem", 3) == "1.618rem".
func Format(c *PowerCache, base, power float64, unit string, precision int) string {
	return formatRounded(base*c.Power(power), precision) + unit
}

// UnitFormatter — форматтер, привязанный к кэшу, единице и точности по умолчанию.
type UnitFormatter struct {
	cache     *PowerCache
	unit      string
	precision int
}

// NewUnitFormatter создаёт форматтер для unit с заданной точностью.
func NewUnitFormatter(c *PowerCache, unit string, precision int) UnitFormatter {
	return UnitFormatter{cache: c, unit: unit, precision: precision}
}

// Rem, Px, Em, Vw, Vh, Pct — форматтеры стандартных единиц.
func Rem(c *PowerCache) UnitFormatter { return NewUnitFormatter(c, UnitRem, DefaultPrecision) }
func Px(c *PowerCache) UnitFormatter  { return NewUnitFormatter(c, UnitPx, 0) }
func Em(c *PowerCache) UnitFormatter  { return NewUnitFormatter(c, UnitEm, DefaultPrecision) }
func Vw(c *PowerCache) UnitFormatter  { return NewUnitFormatter(c, UnitVw, DefaultPrecision) }
func Vh(c *PowerCache) UnitFormatter  { return NewUnitFormatter(c, UnitVh, DefaultPrecision) }
func Pct(c *PowerCache) UnitFormatter { return NewUnitFormatter(c, UnitPct, DefaultPrecision) }

// Unit возвращает единицу форматтера.
func (f UnitFormatter) Unit() string { return f.unit }

// Format — base·φ^power с точностью форматтера.
func (f UnitFormatter) Format(base, power float64) string {
	return Format(f.cache, base, power, f.unit, f.precision)
}

// FormatPrecision — то же, что Format, но с явной точностью.
func (f UnitFormatter) FormatPrecision(base, power float64, precision int) string {
	return Format(f.cache, base, power, f.unit, precision)
}

// UnitOptions — параметры одиночного значения. Precision == nil означает точность единицы по умолчанию.
type UnitOptions struct {
	Base      float64 `json:"base"`
	Power     float64 `json:"power"`
	Unit      string  `json:"unit"`
	Precision *int    `json:"precision,omitempty"`
}

// DefaultUnitOptions: base 1, power 1, rem.
func DefaultUnitOptions() UnitOptions {
	return UnitOptions{Base: 1, Power: 1, Unit: UnitRem}
}

// FormatUnit форматирует значение по UnitOptions.
func FormatUnit(c *PowerCache, opts UnitOptions) string {
	precision := UnitPrecision(opts.Unit)
	if opts.Precision != nil {
		precision = *opts.Precision
	}
	return Format(c, opts.Base, opts.Power, opts.Unit, precision)
}
