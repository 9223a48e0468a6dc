// Package golden — вычисления на основе золотого сечения (φ ≈ 1.618): шкалы отступов и
// типографики, CSS-единицы, clamp-выражения, палитры OKLCH и радиусы скруглений.
//
// Все функции чистые. Единственное изменяемое состояние — кэш степеней *PowerCache,
// который передаётся явно первым аргументом. nil вместо кэша допустим: степень
// считается каждый раз заново.
//
// Входные данные почти не валидируются: отрицательная точность, вырожденные
// вьюпорты или отсутствующие ключи контекста дают NaN/Infinity или странные строки,
// но не ошибку. Ошибки возвращают только GoldenHueScale и GoldenRectangle.
package golden

import "errors"

// Константы золотого сечения.
const (
	Phi        = 1.618033988749895
	PhiSmall   = 1 / Phi   // φ⁻¹
	PhiSquared = Phi * Phi // φ²
)

// ErrStepsOutOfRange возвращается, когда число шагов палитры < 1 или не конечно.
var ErrStepsOutOfRange = errors.New("steps must be a positive integer >= 1")

// ErrMissingDimension возвращается, когда для золотого прямоугольника не задана ни ширина, ни высота.
var ErrMissingDimension = errors.New("provide at least width or height")
