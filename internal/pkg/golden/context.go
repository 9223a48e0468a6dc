package golden

import (
	"math"
	"sort"
	"strings"
)

// Context — произвольная иерархия: ключ → уровень (степень φ). Функции пакета её не меняют.
type Context map[string]float64

// ContextOptions — параметры форматирования контекстной шкалы.
type ContextOptions struct {
	Base      float64 `json:"base"`
	Unit      string  `json:"unit"`
	Precision int     `json:"precision"`
}

// DefaultContextOptions: base 1, rem, 3 знака.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{Base: 1, Unit: UnitRem, Precision: DefaultPrecision}
}

// ContextScale форматирует каждый уровень контекста как base·φ^level.
// Порядок: по возрастанию уровня, при равенстве — по ключу.
func ContextScale(c *PowerCache, ctx Context, opts ContextOptions) Scale {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := ctx[keys[i]], ctx[keys[j]]
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})

	f := NewUnitFormatter(c, opts.Unit, opts.Precision)
	out := make(Scale, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: f.Format(opts.Base, ctx[k])})
	}
	return out
}

// level возвращает уровень ключа или NaN, если ключа нет.
func (ctx Context) level(key string) float64 {
	if v, ok := ctx[key]; ok {
		return v
	}
	return math.NaN()
}

// ContextRatio возвращает φ^(ctx[a]-ctx[b]). Ключи должны быть в контексте: для
// отсутствующего ключа результат NaN.
func ContextRatio(c *PowerCache, ctx Context, a, b string) float64 {
	return c.Power(ctx.level(a) - ctx.level(b))
}

// ContextUnit форматирует base·ContextRatio(a, b) в единицах opts.Unit.
func ContextUnit(c *PowerCache, ctx Context, a, b string, opts ContextOptions) string {
	return formatRounded(opts.Base*ContextRatio(c, ctx, a, b), opts.Precision) + opts.Unit
}

// HashContext — стабильный ключ контекста для мемоизации: пары "k,v" сортируются,
// затем склеиваются как k+v через "|".
func HashContext(ctx Context) string {
	type pair struct{ key, value, sortKey string }
	pairs := make([]pair, 0, len(ctx))
	for k, v := range ctx {
		s := formatNumber(v)
		pairs = append(pairs, pair{key: k, value: s, sortKey: k + "," + s})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].sortKey < pairs[j].sortKey })

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + p.value
	}
	return strings.Join(parts, "|")
}
