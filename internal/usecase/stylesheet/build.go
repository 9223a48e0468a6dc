// Package stylesheet собирает полную таблицу стилей из файла токенов:
// переменные --phi*, шкалы, контексты, clamp-значения и тему.
package stylesheet

import (
	"fmt"
	"strings"

	"phiCalc/internal/domain"
	"phiCalc/internal/pkg/golden"
)

// Build рендерит таблицу стилей. Ошибка — пустое имя контекста или clamp, неверная тема.
func Build(c *golden.PowerCache, t domain.Tokens) (string, error) {
	precision := golden.DefaultCSSPrecision
	setInt(&precision, t.PhiPrecision)

	root := golden.Rule{Selector: ":root"}

	for _, e := range golden.SpacingScale(c, scaleOptions(golden.DefaultSpacingOptions(), t.Spacing)) {
		root.Declarations = append(root.Declarations, variable("space", e))
	}
	for _, e := range golden.TypographyScale(c, scaleOptions(golden.DefaultTypographyOptions(), t.Typography)) {
		root.Declarations = append(root.Declarations, variable("text", e))
	}

	for i, ct := range t.Contexts {
		if ct.Name == "" {
			return "", fmt.Errorf("%w: context #%d has no name", domain.ErrInvalidParams, i)
		}
		opts := golden.DefaultContextOptions()
		setFloat(&opts.Base, ct.Base)
		setString(&opts.Unit, ct.Unit)
		setInt(&opts.Precision, ct.Precision)
		for _, e := range golden.ContextScale(c, ct.Levels, opts) {
			root.Declarations = append(root.Declarations, variable(ct.Name, e))
		}
	}

	for i, cl := range t.Clamps {
		if cl.Name == "" {
			return "", fmt.Errorf("%w: clamp #%d has no name", domain.ErrInvalidParams, i)
		}
		opts := golden.DefaultClampOptions()
		opts.Min = cl.Min
		setFloat(&opts.PowerSpan, cl.PowerSpan)
		setFloat(&opts.MinViewport, cl.MinViewport)
		setFloat(&opts.MaxViewport, cl.MaxViewport)
		setString(&opts.Unit, cl.Unit)
		setInt(&opts.Precision, cl.Precision)
		root.Declarations = append(root.Declarations, variable("clamp", golden.Entry{Key: cl.Name, Value: golden.Clamp(c, opts)}))
	}

	theme, err := golden.BuildTheme(c, ThemeOptions(t.Theme))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}

	var b strings.Builder
	b.WriteString(golden.PhiCSS(precision))
	b.WriteByte('\n')
	b.WriteString(root.CSS())
	b.WriteByte('\n')
	b.WriteString(theme.CSS())
	return b.String(), nil
}

// ThemeOptions накладывает токены темы на умолчания.
func ThemeOptions(t *domain.ThemeTokens) golden.ThemeOptions {
	opts := golden.DefaultThemeOptions()
	if t == nil {
		return opts
	}
	setFloat(&opts.ColorSteps, t.ColorSteps)
	setFloat(&opts.BaseHue, t.BaseHue)
	setFloat(&opts.Lightness, t.Lightness)
	setFloat(&opts.Chroma, t.Chroma)
	setInt(&opts.Precision, t.Precision)
	setInt(&opts.RadiusSteps, t.RadiusSteps)
	setFloat(&opts.RectBase, t.RectBase)
	setFloat(&opts.RadiusPowerStart, t.RadiusPowerStart)
	return opts
}

func scaleOptions(opts golden.ScaleOptions, t *domain.ScaleTokens) golden.ScaleOptions {
	if t == nil {
		return opts
	}
	setFloat(&opts.Base, t.Base)
	setInt(&opts.Precision, t.Precision)
	return opts
}

// variable — декларация --<prefix>-<key>; точки в ключах недопустимы в именах и заменяются на "_".
func variable(prefix string, e golden.Entry) golden.Entry {
	return golden.Entry{
		Key:   "--" + prefix + "-" + strings.ReplaceAll(e.Key, ".", "_"),
		Value: e.Value,
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
