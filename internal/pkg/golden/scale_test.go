package golden

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpacingScale(t *testing.T) {
	s := SpacingScale(NewPowerCache(), DefaultSpacingOptions())

	assert.Equal(t, []string{"0", "px", "0.5", "1", "2", "3", "4", "5", "6", "8", "10", "12", "16", "20", "24", "32"}, s.Keys())

	tests := []struct {
		key  string
		want string
	}{
		{key: "0", want: "0"},
		{key: "px", want: "1px"},
		{key: "0.5", want: "0.155rem"},
		{key: "1", want: "0.25rem"},
		{key: "2", want: "0.405rem"},
		{key: "3", want: "0.655rem"},
		{key: "4", want: "1.059rem"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := s.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpacingScale_LiteralsIgnoreBase(t *testing.T) {
	s := SpacingScale(nil, ScaleOptions{Base: 10, Precision: 0})
	zero, _ := s.Get("0")
	px, _ := s.Get("px")
	one, _ := s.Get("1")

	assert.Equal(t, "0", zero)
	assert.Equal(t, "1px", px)
	assert.Equal(t, "10rem", one)
}

func TestTypographyScale(t *testing.T) {
	s := TypographyScale(NewPowerCache(), DefaultTypographyOptions())

	want := Scale{
		{"3xs", "0.236rem"}, {"2xs", "0.382rem"}, {"xs", "0.618rem"}, {"sm", "0.786rem"},
		{"base", "1rem"}, {"md", "1.272rem"}, {"lg", "1.618rem"}, {"xl", "2.058rem"},
		{"2xl", "2.618rem"}, {"3xl", "4.236rem"}, {"4xl", "6.854rem"}, {"5xl", "11.09rem"},
	}
	assert.Equal(t, want, s)
}

func TestScale_Idempotent(t *testing.T) {
	c := NewPowerCache()
	assert.Equal(t, SpacingScale(c, DefaultSpacingOptions()), SpacingScale(c, DefaultSpacingOptions()))
	assert.Equal(t, TypographyScale(c, DefaultTypographyOptions()), TypographyScale(c, DefaultTypographyOptions()))
}

func TestScale_JSONKeepsOrder(t *testing.T) {
	s := Scale{{"b", "2"}, {"a", "1"}, {"c", "3"}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"2","a":"1","c":"3"}`, string(data))

	var back Scale
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestScale_UnmarshalRejectsNonObject(t *testing.T) {
	var s Scale
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestScale_Map(t *testing.T) {
	s := Scale{{"a", "1"}, {"b", "2"}}
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, s.Map())
	_, ok := s.Get("missing")
	assert.False(t, ok)
}
