package golden

import (
	"math"
	"strconv"
	"sync"
)

// warmMin, warmMax — диапазон целых степеней, которые NewPowerCache считает заранее.
const (
	warmMin = -10
	warmMax = 10
)

// PowerCache — кэш значений φ^p. Ключ — показатель степени (целый или дробный),
// значение считается один раз и больше не меняется. Вытеснения нет: вызывающие
// используют узкий диапазон степеней.
type PowerCache struct {
	mu     sync.RWMutex
	powers map[float64]float64
}

// NewPowerCache создаёт кэш и прогревает его степенями от -10 до 10.
func NewPowerCache() *PowerCache {
	c := &PowerCache{powers: make(map[float64]float64, warmMax-warmMin+1)}
	for p := warmMin; p <= warmMax; p++ {
		c.powers[float64(p)] = math.Pow(Phi, float64(p))
	}
	return c
}

// Power возвращает φ^p. При промахе считает через math.Pow и сохраняет.
// Гонка двух первых записей одного ключа безопасна: значение детерминировано, побеждает последняя.
func (c *PowerCache) Power(p float64) float64 {
	if c == nil {
		return math.Pow(Phi, p)
	}
	c.mu.RLock()
	v, ok := c.powers[p]
	c.mu.RUnlock()
	if ok {
		return v
	}

	v = math.Pow(Phi, p)
	// NaN как ключ map никогда не находится повторно, не храним.
	if math.IsNaN(p) {
		return v
	}
	c.mu.Lock()
	if c.powers == nil {
		c.powers = make(map[float64]float64)
	}
	c.powers[p] = v
	c.mu.Unlock()
	return v
}

// Cached сообщает, посчитана ли уже степень p.
func (c *PowerCache) Cached(p float64) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.powers[p]
	return ok
}

// Len — число сохранённых степеней.
func (c *PowerCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.powers)
}

// Precise возвращает φ^power, округлённое до digits значащих цифр (digits ограничен 1..21).
// Кэш не используется.
func Precise(power float64, digits int) float64 {
	digits = min(max(digits, 1), 21)
	v := math.Pow(Phi, power)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}
