package golden

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Entry — одна пара ключ/значение шкалы.
type Entry struct {
	Key   string
	Value string
}

// Scale — упорядоченное отображение ключ → строка. Порядок — порядок объявления
// (от меньшего к большему), а не сортировка.
type Scale []Entry

// Get возвращает значение по ключу.
func (s Scale) Get(key string) (string, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys возвращает ключи в порядке шкалы.
func (s Scale) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// Map возвращает копию шкалы в виде map (порядок теряется).
func (s Scale) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, e := range s {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON пишет шкалу JSON-объектом, сохраняя порядок ключей.
func (s Scale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON читает JSON-объект со строковыми значениями, сохраняя порядок ключей.
func (s *Scale) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scale: expected object, got %v", tok)
	}
	out := Scale{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("scale: expected string key, got %v", tok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("scale: key %q: %w", key, err)
		}
		out = append(out, Entry{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// step — строка таблицы шкалы: ключ и степень φ.
type step struct {
	key   string
	power float64
}

var negInf = math.Inf(-1)

// spacingSteps — шкала отступов. "0" и "px" — литералы, степень для них не используется.
var spacingSteps = []step{
	{"0", negInf}, {"px", negInf},
	{"0.5", -1}, {"1", 0}, {"2", 1}, {"3", 2}, {"4", 3}, {"5", 4}, {"6", 5},
	{"8", 6}, {"10", 7}, {"12", 8}, {"16", 9}, {"20", 10}, {"24", 11}, {"32", 12},
}

// typographySteps — шкала размеров шрифта.
var typographySteps = []step{
	{"3xs", -3}, {"2xs", -2}, {"xs", -1}, {"sm", -0.5}, {"base", 0}, {"md", 0.5},
	{"lg", 1}, {"xl", 1.5}, {"2xl", 2}, {"3xl", 3}, {"4xl", 4}, {"5xl", 5},
}

// ScaleOptions — параметры фиксированных шкал.
type ScaleOptions struct {
	Base      float64 `json:"base"`
	Precision int     `json:"precision"`
}

// DefaultSpacingOptions: base 0.25rem, 3 знака.
func DefaultSpacingOptions() ScaleOptions {
	return ScaleOptions{Base: 0.25, Precision: DefaultPrecision}
}

// DefaultTypographyOptions: base 1rem, 3 знака.
func DefaultTypographyOptions() ScaleOptions {
	return ScaleOptions{Base: 1, Precision: DefaultPrecision}
}

// SpacingScale строит шкалу отступов в rem. Ключ "0" всегда "0", "px" всегда "1px".
func SpacingScale(c *PowerCache, opts ScaleOptions) Scale {
	rem := NewUnitFormatter(c, UnitRem, opts.Precision)
	out := make(Scale, 0, len(spacingSteps))
	for _, st := range spacingSteps {
		var v string
		switch st.key {
		case "0":
			v = "0"
		case "px":
			v = "1px"
		default:
			v = rem.Format(opts.Base, st.power)
		}
		out = append(out, Entry{Key: st.key, Value: v})
	}
	return out
}

// TypographyScale строит шкалу размеров шрифта в rem.
func TypographyScale(c *PowerCache, opts ScaleOptions) Scale {
	rem := NewUnitFormatter(c, UnitRem, opts.Precision)
	out := make(Scale, 0, len(typographySteps))
	for _, st := range typographySteps {
		out = append(out, Entry{Key: st.key, Value: rem.Format(opts.Base, st.power)})
	}
	return out
}
