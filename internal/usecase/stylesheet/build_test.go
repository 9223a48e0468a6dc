package stylesheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phiCalc/internal/domain"
	"phiCalc/internal/pkg/golden"
)

func ptr[T any](v T) *T { return &v }

func TestBuild_Defaults(t *testing.T) {
	css, err := Build(golden.NewPowerCache(), domain.Tokens{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(css), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, ":root{--phi:1.618034;--phi-small:0.618034;--phi-squared:2.618034;}", lines[0])

	root := lines[1]
	assert.True(t, strings.HasPrefix(root, ":root{--space-0:0;--space-px:1px;--space-0_5:0.155rem;"), root)
	assert.Contains(t, root, "--space-2:0.405rem;")
	assert.Contains(t, root, "--text-lg:1.618rem;")
	assert.NotContains(t, root, "--clamp-")

	assert.Contains(t, css, ".rounded-phi-2{border-radius:38.20px;}")
	assert.Contains(t, css, "--phi-color-5:")
}

func TestBuild_Tokens(t *testing.T) {
	tokens := domain.Tokens{
		PhiPrecision: ptr(2),
		Spacing:      &domain.ScaleTokens{Base: ptr(1.0), Precision: ptr(1)},
		Contexts: []domain.ContextTokens{
			{Name: "heading", Levels: map[string]float64{"h1": 3, "h2": 2}, Unit: ptr("em")},
		},
		Clamps: []domain.ClampTokens{
			{Name: "body", Min: 1},
		},
		Theme: &domain.ThemeTokens{ColorSteps: ptr(1.0), RadiusSteps: ptr(1)},
	}

	css, err := Build(golden.NewPowerCache(), tokens)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		":root{--phi:1.62;--phi-small:0.62;--phi-squared:2.62;}",
		"",
	}, "\n"), css[:strings.Index(css, "\n")+1])
	assert.Contains(t, css, "--space-1:1rem;")
	assert.Contains(t, css, "--space-2:1.6rem;")
	assert.Contains(t, css, "--heading-h2:2.618em;--heading-h1:4.236em;")
	assert.Contains(t, css, "--clamp-body:clamp(1.000rem, calc(1.000rem + (0.618 * ((100vw - 320px) / (1920 - 320)))), 1.618rem);")
	assert.Contains(t, css, ":root{--phi-color-0:oklch(0.780 0.160 0.0);}\n.rounded-phi-2{border-radius:38.20px;}\n")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens domain.Tokens
	}{
		{name: "контекст без имени", tokens: domain.Tokens{Contexts: []domain.ContextTokens{{Levels: map[string]float64{"a": 1}}}}},
		{name: "clamp без имени", tokens: domain.Tokens{Clamps: []domain.ClampTokens{{Min: 1}}}},
		{name: "тема без цветов", tokens: domain.Tokens{Theme: &domain.ThemeTokens{ColorSteps: ptr(0.0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(golden.NewPowerCache(), tt.tokens)
			assert.ErrorIs(t, err, domain.ErrInvalidParams)
		})
	}
}

func TestThemeOptions(t *testing.T) {
	assert.Equal(t, golden.DefaultThemeOptions(), ThemeOptions(nil))

	opts := ThemeOptions(&domain.ThemeTokens{BaseHue: ptr(200.0), RadiusSteps: ptr(2)})
	assert.Equal(t, 200.0, opts.BaseHue)
	assert.Equal(t, 2, opts.RadiusSteps)
	assert.Equal(t, 6.0, opts.ColorSteps)
}
