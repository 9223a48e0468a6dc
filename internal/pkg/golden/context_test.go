package golden

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextScale(t *testing.T) {
	c := NewPowerCache()
	ctx := Context{"h1": 3, "h2": 2}

	s := ContextScale(c, ctx, DefaultContextOptions())

	h1, _ := s.Get("h1")
	assert.Equal(t, "4.236rem", h1)
	assert.Equal(t, Scale{{"h2", "2.618rem"}, {"h1", "4.236rem"}}, s, "порядок по возрастанию уровня")
	assert.Equal(t, Context{"h1": 3, "h2": 2}, ctx, "контекст не меняется")
}

func TestContextScale_TiesSortedByKey(t *testing.T) {
	s := ContextScale(nil, Context{"b": 1, "a": 1, "c": 0}, ContextOptions{Base: 10, Unit: "px", Precision: 0})
	assert.Equal(t, []string{"c", "a", "b"}, s.Keys())
	assert.Equal(t, Scale{{"c", "10px"}, {"a", "16px"}, {"b", "16px"}}, s)
}

func TestContextRatio(t *testing.T) {
	c := NewPowerCache()
	ctx := Context{"h1": 3, "h2": 2, "body": 0}

	assert.InDelta(t, 1.618, ContextRatio(c, ctx, "h1", "h2"), 1e-3)
	assert.InDelta(t, 1/Phi, ContextRatio(c, ctx, "h2", "h1"), 1e-12)
	assert.InDelta(t, math.Pow(Phi, 3), ContextRatio(c, ctx, "h1", "body"), 1e-12)
	assert.Equal(t, 1.0, ContextRatio(c, ctx, "h1", "h1"))
}

func TestContextRatio_MissingKeyIsNaN(t *testing.T) {
	c := NewPowerCache()
	ctx := Context{"h1": 3}

	assert.True(t, math.IsNaN(ContextRatio(c, ctx, "h1", "nope")))
	assert.True(t, math.IsNaN(ContextRatio(c, ctx, "nope", "h1")))
	assert.Equal(t, "NaNrem", ContextUnit(c, ctx, "nope", "h1", DefaultContextOptions()))
}

func TestContextUnit(t *testing.T) {
	c := NewPowerCache()
	ctx := Context{"h1": 3, "h2": 2}

	assert.Equal(t, "1.618rem", ContextUnit(c, ctx, "h1", "h2", DefaultContextOptions()))
	assert.Equal(t, "26px", ContextUnit(c, ctx, "h1", "h2", ContextOptions{Base: 16, Unit: "px", Precision: 0}))
}

func TestHashContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{name: "пустой", ctx: Context{}, want: ""},
		{name: "заголовки", ctx: Context{"h2": 2, "h1": 3}, want: "h13|h22"},
		{name: "дробные уровни", ctx: Context{"md": 0.5, "sm": -0.5}, want: "md0.5|sm-0.5"},
		// "a!" < "a," по байтам, поэтому сортировка идёт по "k,v", а не по ключу
		{name: "сортировка по паре", ctx: Context{"a": 1, "a!": 2}, want: "a!2|a1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashContext(tt.ctx))
		})
	}
}
