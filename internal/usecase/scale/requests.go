package scale

import (
	"bytes"
	"encoding/json"
	"fmt"

	"phiCalc/internal/domain"
	"phiCalc/internal/pkg/golden"
)

// request — разобранные параметры одного вида расчёта.
type request interface {
	// key — каноническая часть ключа кэша (без вида).
	key() (string, error)
	compute(c *golden.PowerCache) (any, error)
}

// newRequest возвращает запрос вида kind, заполненный значениями по умолчанию.
func newRequest(kind string) (request, error) {
	switch kind {
	case domain.KindPhi:
		return &phiRequest{UnitOptions: golden.DefaultUnitOptions()}, nil
	case domain.KindPhiPrecise:
		return &preciseRequest{Power: 1, Digits: 15}, nil
	case domain.KindSpacing:
		return &spacingRequest{golden.DefaultSpacingOptions()}, nil
	case domain.KindTypography:
		return &typographyRequest{golden.DefaultTypographyOptions()}, nil
	case domain.KindContextScale:
		return &contextScaleRequest{ContextOptions: golden.DefaultContextOptions()}, nil
	case domain.KindContextRatio:
		return &contextRatioRequest{}, nil
	case domain.KindContextUnit:
		return &contextUnitRequest{ContextOptions: golden.DefaultContextOptions()}, nil
	case domain.KindClamp:
		return &clampRequest{golden.DefaultClampOptions()}, nil
	case domain.KindCSS:
		return &cssRequest{Precision: golden.DefaultCSSPrecision}, nil
	case domain.KindColors:
		return &colorsRequest{Steps: golden.DefaultThemeOptions().ColorSteps, HueOptions: golden.DefaultHueOptions()}, nil
	case domain.KindRectangle:
		return &rectangleRequest{}, nil
	case domain.KindRadius:
		return &radiusRequest{RadiusOptions: golden.DefaultRadiusOptions()}, nil
	case domain.KindTheme:
		return &themeRequest{golden.DefaultThemeOptions()}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, kind)
}

// decodeRequest накладывает JSON параметров на умолчания вида. Пустые параметры и null — только умолчания.
func decodeRequest(kind string, params []byte) (request, error) {
	req, err := newRequest(kind)
	if err != nil {
		return nil, err
	}
	params = bytes.TrimSpace(params)
	if len(params) == 0 || bytes.Equal(params, []byte("null")) {
		return req, nil
	}
	dec := json.NewDecoder(bytes.NewReader(params))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidParams, kind, err)
	}
	return req, nil
}

func canonicalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	return string(b), nil
}

func requireKeys(ctx golden.Context, keys ...string) error {
	for _, k := range keys {
		if _, ok := ctx[k]; !ok {
			return fmt.Errorf("%w: context key %q not found", domain.ErrInvalidParams, k)
		}
	}
	return nil
}

type phiRequest struct {
	golden.UnitOptions
}

func (r *phiRequest) key() (string, error) { return canonicalJSON(r) }

func (r *phiRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.FormatUnit(c, r.UnitOptions), nil
}

type preciseRequest struct {
	Power  float64 `json:"power"`
	Digits int     `json:"digits"`
}

func (r *preciseRequest) key() (string, error) { return canonicalJSON(r) }

func (r *preciseRequest) compute(*golden.PowerCache) (any, error) {
	return golden.Precise(r.Power, r.Digits), nil
}

type spacingRequest struct {
	golden.ScaleOptions
}

func (r *spacingRequest) key() (string, error) { return canonicalJSON(r) }

func (r *spacingRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.SpacingScale(c, r.ScaleOptions), nil
}

type typographyRequest struct {
	golden.ScaleOptions
}

func (r *typographyRequest) key() (string, error) { return canonicalJSON(r) }

func (r *typographyRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.TypographyScale(c, r.ScaleOptions), nil
}

type contextScaleRequest struct {
	Context golden.Context `json:"context,omitempty"`
	golden.ContextOptions
}

// key — канонический JSON: ключи контекста сортируются и экранируются, ключ однозначен.
func (r *contextScaleRequest) key() (string, error) { return canonicalJSON(r) }

func (r *contextScaleRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.ContextScale(c, r.Context, r.ContextOptions), nil
}

type contextRatioRequest struct {
	Context golden.Context `json:"context,omitempty"`
	From    string         `json:"from"`
	To      string         `json:"to"`
}

// key — канонический JSON: ключи контекста сортируются и экранируются, ключ однозначен.
func (r *contextRatioRequest) key() (string, error) { return canonicalJSON(r) }

func (r *contextRatioRequest) compute(c *golden.PowerCache) (any, error) {
	if err := requireKeys(r.Context, r.From, r.To); err != nil {
		return nil, err
	}
	return golden.ContextRatio(c, r.Context, r.From, r.To), nil
}

type contextUnitRequest struct {
	Context golden.Context `json:"context,omitempty"`
	From    string         `json:"from"`
	To      string         `json:"to"`
	golden.ContextOptions
}

// key — канонический JSON: ключи контекста сортируются и экранируются, ключ однозначен.
func (r *contextUnitRequest) key() (string, error) { return canonicalJSON(r) }

func (r *contextUnitRequest) compute(c *golden.PowerCache) (any, error) {
	if err := requireKeys(r.Context, r.From, r.To); err != nil {
		return nil, err
	}
	return golden.ContextUnit(c, r.Context, r.From, r.To, r.ContextOptions), nil
}

type clampRequest struct {
	golden.ClampOptions
}

func (r *clampRequest) key() (string, error) { return canonicalJSON(r) }

func (r *clampRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.Clamp(c, r.ClampOptions), nil
}

type cssRequest struct {
	Precision int `json:"precision"`
}

func (r *cssRequest) key() (string, error) { return canonicalJSON(r) }

func (r *cssRequest) compute(*golden.PowerCache) (any, error) {
	return golden.PhiCSS(r.Precision), nil
}

type colorsRequest struct {
	Steps float64 `json:"steps"`
	golden.HueOptions
}

func (r *colorsRequest) key() (string, error) { return canonicalJSON(r) }

func (r *colorsRequest) compute(*golden.PowerCache) (any, error) {
	colors, err := golden.GoldenHueScale(r.Steps, r.HueOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	return colors, nil
}

type rectangleRequest struct {
	golden.RectInput
}

func (r *rectangleRequest) key() (string, error) { return canonicalJSON(r) }

func (r *rectangleRequest) compute(c *golden.PowerCache) (any, error) {
	rect, err := golden.GoldenRectangle(c, r.RectInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	return rect, nil
}

type radiusRequest struct {
	golden.Rect
	golden.RadiusOptions
}

func (r *radiusRequest) key() (string, error) { return canonicalJSON(r) }

func (r *radiusRequest) compute(c *golden.PowerCache) (any, error) {
	return golden.GoldenCornerRadius(c, r.Rect, r.RadiusOptions), nil
}

type themeRequest struct {
	golden.ThemeOptions
}

func (r *themeRequest) key() (string, error) { return canonicalJSON(r) }

func (r *themeRequest) compute(c *golden.PowerCache) (any, error) {
	theme, err := golden.BuildTheme(c, r.ThemeOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	return theme, nil
}
