package palette

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/models"
	"github.com/google/uuid"
)

const MaxBrandColors = 3

var (
	ErrNoBrandColors      = errors.New("at least one brand color is required")
	ErrTooManyBrandColors = fmt.Errorf("at most %d brand colors are supported", MaxBrandColors)
)

type Config struct {
	// Count is the number of palettes per Generate call.
	Count int
	// Delay is waited before a batch is returned.
	Delay time.Duration
	// Prefilter drops harmony candidates below colors.ContrastMinUI against
	// every reference neutral.
	Prefilter bool
	// ReferenceNeutrals used by the prefilter. Empty means the palette's own
	// light and dark neutrals.
	ReferenceNeutrals []colors.RGB
	Adjust            colors.AdjustConfig
	ColorBlind        ColorBlindConfig
}

func DefaultConfig() Config {
	return Config{
		Count:      20,
		Delay:      1500 * time.Millisecond,
		Prefilter:  true,
		Adjust:     colors.DefaultAdjustConfig(),
		ColorBlind: DefaultColorBlindConfig(),
	}
}

// Generator assembles brand palettes. It holds no mutable state and is safe
// for concurrent use.
type Generator struct {
	config Config
}

func NewGenerator(config Config) *Generator {
	defaults := DefaultConfig()
	if config.Count <= 0 {
		config.Count = defaults.Count
	}
	if config.Adjust == (colors.AdjustConfig{}) {
		config.Adjust = defaults.Adjust
	}
	if config.ColorBlind == (ColorBlindConfig{}) {
		config.ColorBlind = defaults.ColorBlind
	}
	return &Generator{config: config}
}

func (g *Generator) Config() Config {
	return g.config
}

// NormalizeBrandColors validates 1 to MaxBrandColors hex colors.
func NormalizeBrandColors(brandColors []string) ([]colors.RGB, []string, error) {
	if len(brandColors) == 0 {
		return nil, nil, ErrNoBrandColors
	}
	if len(brandColors) > MaxBrandColors {
		return nil, nil, ErrTooManyBrandColors
	}

	rgbs := make([]colors.RGB, 0, len(brandColors))
	hexes := make([]string, 0, len(brandColors))
	for i, c := range brandColors {
		hex, err := colors.NormalizeHex(c)
		if err != nil {
			return nil, nil, fmt.Errorf("brand color %d: %w", i+1, err)
		}
		rgb, err := colors.HexToRGB(hex)
		if err != nil {
			return nil, nil, fmt.Errorf("brand color %d: %w", i+1, err)
		}
		rgbs = append(rgbs, rgb)
		hexes = append(hexes, hex)
	}
	return rgbs, hexes, nil
}

// Generate returns Config.Count palettes for brandColors after Config.Delay.
func (g *Generator) Generate(ctx context.Context, brandColors []string) ([]models.Palette, error) {
	rgbs, hexes, err := NormalizeBrandColors(brandColors)
	if err != nil {
		return nil, err
	}

	if g.config.Delay > 0 {
		timer := time.NewTimer(g.config.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	palettes := make([]models.Palette, 0, g.config.Count)
	for i := 0; i < g.config.Count; i++ {
		palettes = append(palettes, g.assemble(rgbs, hexes, i))
	}
	return palettes, nil
}

// Assemble builds the palette at position index of a batch, without delay.
func (g *Generator) Assemble(brandColors []string, index int) (models.Palette, error) {
	rgbs, hexes, err := NormalizeBrandColors(brandColors)
	if err != nil {
		return models.Palette{}, err
	}
	return g.assemble(rgbs, hexes, index), nil
}

// PatternFor round-robins through colors.Patterns.
func PatternFor(index int) colors.Pattern {
	return colors.Patterns[positive(index)%len(colors.Patterns)]
}

// Neutrals derives the light and dark neutrals from the primary: same hue,
// desaturated, lightness pushed 40 points out and clamped to [90,95] and
// [15,20].
func Neutrals(primary colors.HSL) (light, dark colors.HSL) {
	light = colors.HSL{
		H: primary.H,
		S: math.Round(primary.S * 0.15),
		L: math.Min(95, math.Max(primary.L+40, 90)),
	}
	dark = colors.HSL{
		H: primary.H,
		S: math.Round(primary.S * 0.25),
		L: math.Max(15, math.Min(primary.L-40, 20)),
	}
	return light, dark
}

func (g *Generator) assemble(brand []colors.RGB, hexes []string, index int) models.Palette {
	primary := brand[0]
	primaryHSL := primary.HSL()
	pattern := PatternFor(index)

	light, dark := Neutrals(primaryHSL)
	lightRGB, darkRGB := light.RGB(), dark.RGB()

	secondary, accent := g.pickRoles(brand, primaryHSL, pattern, index, []colors.RGB{lightRGB, darkRGB})

	adjust := g.config.Adjust
	accentRGB := accent.RGB()
	if colors.Contrast(accentRGB, lightRGB) < colors.ContrastAA && colors.Contrast(accentRGB, darkRGB) < colors.ContrastAA {
		accent = colors.AdjustForContrast(accent, lightRGB, colors.ContrastAA, adjust).HSL
		accentRGB = accent.RGB()
	}
	secondaryRGB := secondary.RGB()
	if colors.Contrast(secondaryRGB, lightRGB) < colors.ContrastAA {
		secondary = colors.AdjustForContrast(secondary, lightRGB, colors.ContrastAA, adjust).HSL
		secondaryRGB = secondary.RGB()
	}

	report := Accessibility(primary, secondaryRGB, accentRGB, lightRGB, g.config.ColorBlind)
	values := reasoningValues{primary: primaryHSL, secondary: secondary, accent: accent}

	return models.Palette{
		ID:      uuid.New().String(),
		Name:    PaletteName(index),
		Pattern: string(pattern),
		Primary: models.ColorInfo{
			Name:    ColorName(primaryHSL, RolePrimary, index),
			Hex:     hexes[0],
			RGB:     colors.FormatRGBString(primary),
			HSL:     colors.FormatHSLString(primaryHSL),
			Meaning: Meaning(primaryHSL, RolePrimary),
		},
		Secondary: colorInfo(secondary, RoleSecondary, index+1),
		Accent:    colorInfo(accent, RoleAccent, index+2),
		Neutral: models.Neutral{
			Light: colorInfo(light, RoleNeutralLight, index),
			Dark:  colorInfo(dark, RoleNeutralDark, index),
		},
		Accessibility: report,
		Reasoning: models.Reasoning{
			BrandGoals:             brandGoalsReasoning(pattern, values),
			AccessibilityReasoning: accessibilityReasoning(report),
			HarmonyExplanation:     harmonyReasoning(pattern, values),
		},
	}
}

// pickRoles chooses secondary and accent from the harmony of the primary.
// Extra brand colors take precedence on odd positions of a batch; the single
// color generator fills in when filtering leaves too few candidates.
func (g *Generator) pickRoles(brand []colors.RGB, primary colors.HSL, pattern colors.Pattern, index int, neutrals []colors.RGB) (colors.HSL, colors.HSL) {
	candidates := colors.Harmony(primary, pattern)[1:]
	if g.config.Prefilter {
		refs := g.config.ReferenceNeutrals
		if len(refs) == 0 {
			refs = neutrals
		}
		candidates = prefilter(candidates, refs)
	}

	if index%2 == 1 && len(brand) > 1 {
		pinned := make([]colors.HSL, 0, len(brand)-1)
		for _, c := range brand[1:] {
			pinned = append(pinned, c.HSL())
		}
		candidates = append(pinned, candidates...)
	}

	for len(candidates) < 2 {
		candidates = append(candidates, colors.RelatedColor(primary, pattern, len(candidates)))
	}
	return candidates[0], candidates[1]
}

// prefilter keeps candidates that reach colors.ContrastMinUI against at
// least one reference.
func prefilter(candidates []colors.HSL, refs []colors.RGB) []colors.HSL {
	kept := make([]colors.HSL, 0, len(candidates))
	for _, c := range candidates {
		rgb := c.RGB()
		for _, ref := range refs {
			if colors.Contrast(rgb, ref) >= colors.ContrastMinUI {
				kept = append(kept, c)
				break
			}
		}
	}
	return kept
}

func colorInfo(c colors.HSL, role Role, ordinal int) models.ColorInfo {
	rgb := c.RGB()
	return models.ColorInfo{
		Name:    ColorName(c, role, ordinal),
		Hex:     rgb.Hex(),
		RGB:     colors.FormatRGBString(rgb),
		HSL:     colors.FormatHSLString(c),
		Meaning: Meaning(c, role),
	}
}
