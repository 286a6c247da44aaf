package palette

import (
	"context"
	"testing"
	"time"

	"github.com/color-game/palette-studio/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	cfg := DefaultConfig()
	cfg.Delay = 0
	return NewGenerator(cfg)
}

func mustHSL(t *testing.T, s string) colors.HSL {
	t.Helper()
	hsl, err := colors.ParseHSL(s)
	require.NoError(t, err)
	return hsl
}

func hueDistance(a, b float64) float64 {
	d := colors.NormalizeHue(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestGenerateBatch(t *testing.T) {
	palettes, err := newTestGenerator().Generate(context.Background(), []string{"#3b82f6"})
	require.NoError(t, err)
	require.Len(t, palettes, 20)

	ids := map[string]bool{}
	for i, p := range palettes {
		assert.Equal(t, PaletteNames[i], p.Name)
		assert.Equal(t, string(colors.Patterns[i%len(colors.Patterns)]), p.Pattern)
		assert.Equal(t, "#3b82f6", p.Primary.Hex)
		assert.Equal(t, "hsl(217, 91%, 60%)", p.Primary.HSL)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		assert.NoError(t, p.Validate())
	}
}

func TestComplementarySecondaryHue(t *testing.T) {
	p, err := newTestGenerator().Assemble([]string{"#3b82f6"}, 0)
	require.NoError(t, err)
	require.Equal(t, string(colors.Complementary), p.Pattern)

	secondary := mustHSL(t, p.Secondary.HSL)
	assert.LessOrEqual(t, hueDistance(secondary.H, 37), 5.0)
}

func TestNeutralInvariants(t *testing.T) {
	g := newTestGenerator()
	for _, hex := range []string{"#3b82f6", "#000000", "#ffffff", "#fde047", "#7c3aed"} {
		t.Run(hex, func(t *testing.T) {
			p, err := g.Assemble([]string{hex}, 3)
			require.NoError(t, err)

			primary := mustHSL(t, p.Primary.HSL)
			light := mustHSL(t, p.Neutral.Light.HSL)
			dark := mustHSL(t, p.Neutral.Dark.HSL)

			assert.GreaterOrEqual(t, light.L, dark.L)
			assert.Equal(t, primary.H, light.H)
			assert.Equal(t, primary.H, dark.H)
			assert.LessOrEqual(t, light.S, primary.S)
			assert.LessOrEqual(t, dark.S, primary.S)
			assert.LessOrEqual(t, light.L, 95.0)
			assert.GreaterOrEqual(t, dark.L, 15.0)
		})
	}
}

func TestNeutrals(t *testing.T) {
	light, dark := Neutrals(colors.HSL{H: 217, S: 91, L: 60})
	assert.Equal(t, colors.HSL{H: 217, S: 14, L: 95}, light)
	assert.Equal(t, colors.HSL{H: 217, S: 23, L: 20}, dark)

	light, dark = Neutrals(colors.HSL{H: 10, S: 40, L: 10})
	assert.Equal(t, 90.0, light.L)
	assert.Equal(t, 15.0, dark.L)
}

func TestSecondaryMeetsContrastOrStops(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < len(colors.Patterns); i++ {
		p, err := g.Assemble([]string{"#3b82f6"}, i)
		require.NoError(t, err)

		ratio, err := colors.ContrastRatio(p.Secondary.Hex, p.Neutral.Light.Hex)
		require.NoError(t, err)
		secondary := mustHSL(t, p.Secondary.HSL)
		if secondary.L > g.Config().Adjust.MinLightness {
			assert.GreaterOrEqual(t, ratio, colors.ContrastAA-g.Config().Adjust.Tolerance, "pattern %s", p.Pattern)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	g := newTestGenerator()

	_, err := g.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoBrandColors)

	_, err = g.Generate(context.Background(), []string{"#111111", "#222222", "#333333", "#444444"})
	assert.ErrorIs(t, err, ErrTooManyBrandColors)

	_, err = g.Generate(context.Background(), []string{"#3b82f6", "purple"})
	assert.ErrorIs(t, err, colors.ErrMalformedHex)
}

func TestGenerateHonoursContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delay = time.Minute
	g := NewGenerator(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, []string{"#3b82f6"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateWaitsForDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delay = 20 * time.Millisecond
	cfg.Count = 2
	g := NewGenerator(cfg)

	start := time.Now()
	palettes, err := g.Generate(context.Background(), []string{"#3b82f6"})
	require.NoError(t, err)
	assert.Len(t, palettes, 2)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestExtraBrandColorsPinnedOnOddPositions(t *testing.T) {
	g := newTestGenerator()
	brand := []string{"#3b82f6", "#22c55e", "#f43f5e"}

	odd, err := g.Assemble(brand, 1)
	require.NoError(t, err)
	even, err := g.Assemble(brand, 0)
	require.NoError(t, err)

	green := mustHSL(t, odd.Secondary.HSL)
	assert.LessOrEqual(t, hueDistance(green.H, 142), 2.0)
	evenSecondary := mustHSL(t, even.Secondary.HSL)
	assert.Greater(t, hueDistance(evenSecondary.H, 142), 30.0)
}

func TestAssembleIsDeterministic(t *testing.T) {
	g := newTestGenerator()
	a, err := g.Assemble([]string{"#3b82f6"}, 7)
	require.NoError(t, err)
	b, err := g.Assemble([]string{"#3b82f6"}, 7)
	require.NoError(t, err)

	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestPrefilterFallsBackToRelatedColor(t *testing.T) {
	primary := colors.HSL{H: 217, S: 91, L: 60}
	// a mid gray reference no harmony candidate can reach 3:1 against
	refs := []colors.RGB{{R: 119, G: 119, B: 119}}

	kept := prefilter(colors.Harmony(primary, colors.Analogous)[1:], refs)
	assert.Empty(t, kept)

	cfg := DefaultConfig()
	cfg.Delay = 0
	cfg.ReferenceNeutrals = refs
	g := NewGenerator(cfg)
	secondary, accent := g.pickRoles([]colors.RGB{primary.RGB()}, primary, colors.Analogous, 1, nil)
	assert.Equal(t, colors.RelatedColor(primary, colors.Analogous, 0), secondary)
	assert.Equal(t, colors.RelatedColor(primary, colors.Analogous, 1), accent)
}

func TestReasoningMentionsValues(t *testing.T) {
	p, err := newTestGenerator().Assemble([]string{"#3b82f6"}, 0)
	require.NoError(t, err)

	assert.Contains(t, p.Reasoning.BrandGoals, "217°")
	assert.Contains(t, p.Reasoning.HarmonyExplanation, "37°")
	assert.NotEmpty(t, p.Reasoning.AccessibilityReasoning)
	for _, r := range []string{p.Reasoning.BrandGoals, p.Reasoning.HarmonyExplanation} {
		assert.NotContains(t, r, "%!")
	}
}

func TestReasoningTemplatesCoverEveryPattern(t *testing.T) {
	v := reasoningValues{
		primary:   colors.HSL{H: 10, S: 20, L: 30},
		secondary: colors.HSL{H: 40},
		accent:    colors.HSL{H: 50, L: 60},
	}
	for _, p := range colors.Patterns {
		_, ok := reasoningTemplates[p]
		require.True(t, ok, "missing template for %s", p)
		assert.NotContains(t, brandGoalsReasoning(p, v), "%!")
		assert.NotContains(t, harmonyReasoning(p, v), "%!")
	}
}

func TestAccessibilityReport(t *testing.T) {
	report := Accessibility(colors.Black, colors.White, colors.RGB{R: 119, G: 119, B: 119}, colors.White, DefaultColorBlindConfig())

	assert.Equal(t, 21.0, report.TextOnPrimary.WhiteContrast)
	assert.Equal(t, 1.0, report.TextOnPrimary.BlackContrast)
	assert.True(t, report.TextOnPrimary.PassesAAA)
	assert.True(t, report.TextOnSecondary.PassesAAA)
	assert.True(t, report.PrimaryOnNeutral.PassesAAA)
	assert.False(t, report.IsColorBlindFriendly, "grays have no red/green delta")
}

func TestIsColorBlindFriendly(t *testing.T) {
	cfg := DefaultColorBlindConfig()
	tests := []struct {
		name  string
		roles []colors.RGB
		want  bool
	}{
		{
			name:  "red and green with luminance gap",
			roles: []colors.RGB{{R: 220, G: 40, B: 40}, {R: 240, G: 240, B: 240}, {R: 20, G: 20, B: 20}},
			want:  true,
		},
		{
			name:  "no red/green delta",
			roles: []colors.RGB{{R: 50, G: 50, B: 200}, {R: 240, G: 240, B: 250}, {R: 10, G: 10, B: 30}},
			want:  false,
		},
		{
			name:  "similar luminance",
			roles: []colors.RGB{{R: 200, G: 100, B: 100}, {R: 190, G: 110, B: 100}, {R: 195, G: 105, B: 100}},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorBlindFriendly(tt.roles, cfg))
		})
	}

	loose := ColorBlindConfig{ChannelDelta: 5, LuminanceDelta: 0.001}
	assert.True(t, IsColorBlindFriendly([]colors.RGB{{R: 200, G: 100, B: 100}, {R: 190, G: 110, B: 100}}, loose))
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, "Ocean Blue", ColorName(colors.HSL{H: 217, S: 60, L: 50}, RolePrimary, 0))
	assert.Equal(t, "Pale Sapphire Blue", ColorName(colors.HSL{H: 217, S: 60, L: 85}, RoleAccent, 1))
	assert.Equal(t, "Deep Ruby Red", ColorName(colors.HSL{H: 355, S: 70, L: 15}, RoleSecondary, 0))
	assert.Equal(t, "Slate Gray", ColorName(colors.HSL{H: 0, S: 0, L: 50}, RolePrimary, 0))
	assert.Equal(t, "Soft White", ColorName(colors.HSL{}, RoleNeutralLight, 0))
	assert.Equal(t, "Graphite", ColorName(colors.HSL{}, RoleNeutralDark, 1))
	assert.Equal(t, "Digital Bloom", PaletteName(21))
}

func TestMeaning(t *testing.T) {
	m := Meaning(colors.HSL{H: 217, S: 91, L: 60}, RolePrimary)
	assert.Contains(t, m, "blue")
	assert.Contains(t, m, "trust")

	assert.Contains(t, Meaning(colors.HSL{}, RoleNeutralDark), "dark neutral")
}

func TestPatternFor(t *testing.T) {
	assert.Equal(t, colors.Complementary, PatternFor(0))
	assert.Equal(t, colors.Monochromatic, PatternFor(5))
	assert.Equal(t, colors.Complementary, PatternFor(6))
	assert.Equal(t, colors.Triadic, PatternFor(14))
}
