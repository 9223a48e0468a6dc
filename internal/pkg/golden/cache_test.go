package golden

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerCache_IntegerPowers(t *testing.T) {
	c := NewPowerCache()
	for p := -10; p <= 10; p++ {
		want := math.Pow(Phi, float64(p))
		assert.InDelta(t, want, c.Power(float64(p)), 1e-12, "φ^%d", p)
		// повторный вызов возвращает то же значение
		assert.Equal(t, c.Power(float64(p)), c.Power(float64(p)))
	}
}

func TestPowerCache_WarmUp(t *testing.T) {
	c := NewPowerCache()
	assert.Equal(t, 21, c.Len())
	assert.True(t, c.Cached(-10))
	assert.True(t, c.Cached(10))
	assert.False(t, c.Cached(0.5))
}

func TestPowerCache_LazyFractional(t *testing.T) {
	c := NewPowerCache()
	before := c.Len()

	v := c.Power(0.5)

	assert.InDelta(t, math.Sqrt(Phi), v, 1e-12)
	assert.True(t, c.Cached(0.5))
	assert.Equal(t, before+1, c.Len())

	// второй вызов не добавляет записей
	_ = c.Power(0.5)
	assert.Equal(t, before+1, c.Len())
}

func TestPowerCache_NonFinite(t *testing.T) {
	c := NewPowerCache()
	before := c.Len()

	assert.True(t, math.IsNaN(c.Power(math.NaN())))
	assert.True(t, math.IsInf(c.Power(math.Inf(1)), 1))
	assert.Equal(t, 0.0, c.Power(math.Inf(-1)))

	// NaN не сохраняется, ±Inf сохраняются
	assert.Equal(t, before+2, c.Len())
}

func TestPowerCache_Nil(t *testing.T) {
	var c *PowerCache
	assert.InDelta(t, Phi, c.Power(1), 1e-15)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Cached(1))
}

func TestPowerCache_ZeroValue(t *testing.T) {
	var c PowerCache
	assert.InDelta(t, Phi*Phi, c.Power(2), 1e-12)
	assert.True(t, c.Cached(2))
}

func TestPowerCache_Concurrent(t *testing.T) {
	c := NewPowerCache()
	var wg sync.WaitGroup
	results := make([]float64, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Power(2.5)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, results[0], r)
	}
	assert.True(t, c.Cached(2.5))
}

func TestPrecise(t *testing.T) {
	assert.Equal(t, 1.61803398875, Precise(1, 12))
	assert.Equal(t, 2.0, Precise(1, 1))
	// digits вне диапазона зажимаются
	assert.Equal(t, 2.0, Precise(1, 0))
	assert.InDelta(t, Phi, Precise(1, 40), 1e-15)
}
