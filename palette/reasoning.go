package palette

import (
	"fmt"
	"strings"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/models"
)

// reasoningValues are the numbers a template may reference, in argument order:
// %[1]d primary hue, %[2]d primary saturation, %[3]d primary lightness,
// %[4]d secondary hue, %[5]d accent hue, %[6]d accent lightness.
type reasoningValues struct {
	primary, secondary, accent colors.HSL
}

func (v reasoningValues) args() []interface{} {
	return []interface{}{
		int(v.primary.H), int(v.primary.S), int(v.primary.L),
		int(v.secondary.H), int(v.accent.H), int(v.accent.L),
	}
}

type reasoningTemplate struct {
	brandGoals string
	harmony    string
}

var reasoningTemplates = map[colors.Pattern]reasoningTemplate{
	colors.Complementary: {
		brandGoals: "Anchored on a primary hue of %[1]d° at %[2]d%% saturation, this palette pairs the brand color with its opposite to project confidence and energy. The strong tension between the two hues makes key actions impossible to miss.",
		harmony:    "The secondary sits at %[4]d°, directly across the color wheel from the primary at %[1]d°. Complementary pairs intensify each other, so the accent at %[5]d° is shifted to %[6]d%% lightness to add depth without competing.",
	},
	colors.Analogous: {
		brandGoals: "Built from neighbouring hues around %[1]d°, this palette keeps the brand voice cohesive and calm. It suits products that want a consistent mood rather than loud contrast.",
		harmony:    "The secondary (%[4]d°) and accent (%[5]d°) sit beside the primary hue of %[1]d° on the color wheel. Analogous schemes read as naturally harmonious because the hues share underlying pigments.",
	},
	colors.Triadic: {
		brandGoals: "Starting from %[1]d° at %[3]d%% lightness, this palette balances three evenly spaced hues for a vibrant yet stable identity. It gives playful brands room to express variety.",
		harmony:    "The primary at %[1]d°, secondary at %[4]d° and accent at %[5]d° are spaced roughly 120° apart. Triadic schemes stay balanced as long as one hue dominates, which here is the primary.",
	},
	colors.SplitComplementary: {
		brandGoals: "This palette keeps the contrast of a complementary scheme around the %[1]d° primary while softening it, giving the brand a lively but approachable tone.",
		harmony:    "Instead of the direct complement, the secondary (%[4]d°) and accent (%[5]d°) flank it on either side. Split-complementary schemes offer strong contrast with less visual tension.",
	},
	colors.Square: {
		brandGoals: "Using four hues spaced around the wheel from %[1]d°, this palette supports rich, multi-section interfaces where each area needs its own identity.",
		harmony:    "The secondary at %[4]d° and accent at %[5]d° come from a square arrangement anchored on %[1]d°. Square schemes work best with one dominant hue and the others used sparingly.",
	},
	colors.Monochromatic: {
		brandGoals: "Every color stays on the %[1]d° hue of the brand, varying only saturation and lightness around %[2]d%% and %[3]d%%. The result is a focused, minimal identity.",
		harmony:    "Secondary and accent share the primary hue of %[1]d° and differ in lightness (the accent sits at %[6]d%%). Monochromatic schemes are inherently harmonious and rely on tonal contrast for hierarchy.",
	},
}

func brandGoalsReasoning(pattern colors.Pattern, v reasoningValues) string {
	t, ok := reasoningTemplates[pattern]
	if !ok {
		return "This palette aims to create a balanced visual identity that conveys professionalism while maintaining a modern appeal."
	}
	return fmt.Sprintf(t.brandGoals, v.args()...)
}

func harmonyReasoning(pattern colors.Pattern, v reasoningValues) string {
	t, ok := reasoningTemplates[pattern]
	if !ok {
		return "The colors in this palette are derived from the brand color to keep the scheme coherent."
	}
	return fmt.Sprintf(t.harmony, v.args()...)
}

// accessibilityReasoning summarizes the report in prose.
func accessibilityReasoning(a models.PaletteAccessibility) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Text on the primary color reaches %s, which %s WCAG AA.",
		bestTextContrast(a.TextOnPrimary), passVerb(a.TextOnPrimary.PassesAA))
	fmt.Fprintf(&b, " The secondary reaches %s and the accent %s.",
		bestTextContrast(a.TextOnSecondary), bestTextContrast(a.TextOnAccent))
	fmt.Fprintf(&b, " Against the light neutral the primary measures %.2f:1", a.PrimaryOnNeutral.Contrast)
	switch {
	case a.PrimaryOnNeutral.PassesAAA:
		b.WriteString(", enough for body text at AAA.")
	case a.PrimaryOnNeutral.PassesAA:
		b.WriteString(", enough for body text at AA.")
	case a.PrimaryOnNeutral.Contrast >= colors.ContrastMinUI:
		b.WriteString(", suitable for large text and UI components.")
	default:
		b.WriteString(", so reserve it for decorative elements on light backgrounds.")
	}
	if a.IsColorBlindFriendly {
		b.WriteString(" Lightness differences between the key colors keep them distinguishable for most forms of color blindness.")
	} else {
		b.WriteString(" Some key colors are close in lightness, so pair them with icons or labels for color-blind users.")
	}
	return b.String()
}

func bestTextContrast(tc models.TextContrast) string {
	if tc.WhiteContrast >= tc.BlackContrast {
		return fmt.Sprintf("%.2f:1 with white text", tc.WhiteContrast)
	}
	return fmt.Sprintf("%.2f:1 with black text", tc.BlackContrast)
}

func passVerb(pass bool) string {
	if pass {
		return "passes"
	}
	return "does not pass"
}
