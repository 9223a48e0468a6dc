package golden

import "fmt"

// ClampOptions — параметры адаптивного clamp(). Min — нижняя граница, верхняя
// граница = Min·φ^PowerSpan.
type ClampOptions struct {
	Min         float64 `json:"min"`
	PowerSpan   float64 `json:"power_span"`
	MinViewport float64 `json:"min_viewport"`
	MaxViewport float64 `json:"max_viewport"`
	Unit        string  `json:"unit"`
	Precision   int     `json:"precision"`
}

// DefaultClampOptions: span 1, вьюпорт 320..1920px, rem, 3 знака.
func DefaultClampOptions() ClampOptions {
	return ClampOptions{
		PowerSpan:   1,
		MinViewport: 320,
		MaxViewport: 1920,
		Unit:        UnitRem,
		Precision:   DefaultPrecision,
	}
}

// Clamp строит CSS-выражение clamp(MIN, calc(...), MAX), линейно растущее между вьюпортами.
// Числа пишутся с фиксированным числом знаков. MinViewport >= MaxViewport не проверяется.
func Clamp(c *PowerCache, opts ClampOptions) string {
	hi := opts.Min * c.Power(opts.PowerSpan)
	lo := formatFixed(opts.Min, opts.Precision) + opts.Unit
	minW := formatNumber(opts.MinViewport)
	maxW := formatNumber(opts.MaxViewport)
	return fmt.Sprintf("clamp(%s, calc(%s + (%s * ((100vw - %spx) / (%s - %s)))), %s%s)",
		lo, lo, formatFixed(hi-opts.Min, opts.Precision), minW, maxW, minW,
		formatFixed(hi, opts.Precision), opts.Unit)
}
