package domain

// Tokens — описание таблицы стилей из файла токенов. Незаданные поля берут умолчания ядра.
type Tokens struct {
	PhiPrecision *int            `json:"phi_precision,omitempty" yaml:"phi_precision" toml:"phi_precision"`
	Spacing      *ScaleTokens    `json:"spacing,omitempty" yaml:"spacing" toml:"spacing"`
	Typography   *ScaleTokens    `json:"typography,omitempty" yaml:"typography" toml:"typography"`
	Contexts     []ContextTokens `json:"contexts,omitempty" yaml:"contexts" toml:"contexts"`
	Clamps       []ClampTokens   `json:"clamps,omitempty" yaml:"clamps" toml:"clamps"`
	Theme        *ThemeTokens    `json:"theme,omitempty" yaml:"theme" toml:"theme"`
}

// ScaleTokens — параметры шкалы отступов или типографики.
type ScaleTokens struct {
	Base      *float64 `json:"base,omitempty" yaml:"base" toml:"base"`
	Precision *int     `json:"precision,omitempty" yaml:"precision" toml:"precision"`
}

// ContextTokens — именованный контекст уровней; переменные --<name>-<key>.
type ContextTokens struct {
	Name      string             `json:"name" yaml:"name" toml:"name"`
	Levels    map[string]float64 `json:"levels" yaml:"levels" toml:"levels"`
	Base      *float64           `json:"base,omitempty" yaml:"base" toml:"base"`
	Unit      *string            `json:"unit,omitempty" yaml:"unit" toml:"unit"`
	Precision *int               `json:"precision,omitempty" yaml:"precision" toml:"precision"`
}

// ClampTokens — именованное адаптивное значение; переменная --clamp-<name>.
type ClampTokens struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Min         float64  `json:"min" yaml:"min" toml:"min"`
	PowerSpan   *float64 `json:"power_span,omitempty" yaml:"power_span" toml:"power_span"`
	MinViewport *float64 `json:"min_viewport,omitempty" yaml:"min_viewport" toml:"min_viewport"`
	MaxViewport *float64 `json:"max_viewport,omitempty" yaml:"max_viewport" toml:"max_viewport"`
	Unit        *string  `json:"unit,omitempty" yaml:"unit" toml:"unit"`
	Precision   *int     `json:"precision,omitempty" yaml:"precision" toml:"precision"`
}

// ThemeTokens — параметры палитры и радиусов.
type ThemeTokens struct {
	ColorSteps       *float64 `json:"color_steps,omitempty" yaml:"color_steps" toml:"color_steps"`
	BaseHue          *float64 `json:"base_hue,omitempty" yaml:"base_hue" toml:"base_hue"`
	Lightness        *float64 `json:"lightness,omitempty" yaml:"lightness" toml:"lightness"`
	Chroma           *float64 `json:"chroma,omitempty" yaml:"chroma" toml:"chroma"`
	Precision        *int     `json:"precision,omitempty" yaml:"precision" toml:"precision"`
	RadiusSteps      *int     `json:"radius_steps,omitempty" yaml:"radius_steps" toml:"radius_steps"`
	RectBase         *float64 `json:"rect_base,omitempty" yaml:"rect_base" toml:"rect_base"`
	RadiusPowerStart *float64 `json:"radius_power_start,omitempty" yaml:"radius_power_start" toml:"radius_power_start"`
}
