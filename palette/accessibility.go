package palette

import (
	"math"

	"github.com/color-game/palette-studio/colors"
	"github.com/color-game/palette-studio/models"
)

// ColorBlindConfig holds the thresholds of the color-blind friendliness
// heuristic. It is a coarse approximation, not a simulation.
type ColorBlindConfig struct {
	// ChannelDelta is the red/green channel difference one role color must exceed.
	ChannelDelta int
	// LuminanceDelta is the relative luminance gap one pair of roles must exceed.
	LuminanceDelta float64
}

func DefaultColorBlindConfig() ColorBlindConfig {
	return ColorBlindConfig{ChannelDelta: 30, LuminanceDelta: 0.2}
}

// Accessibility builds the WCAG report for a palette's role colors.
func Accessibility(primary, secondary, accent, neutralLight colors.RGB, cb ColorBlindConfig) models.PaletteAccessibility {
	onNeutral := colors.Contrast(primary, neutralLight)
	return models.PaletteAccessibility{
		TextOnPrimary:   textContrast(primary),
		TextOnSecondary: textContrast(secondary),
		TextOnAccent:    textContrast(accent),
		PrimaryOnNeutral: models.NeutralContrast{
			Contrast:  round2(onNeutral),
			PassesAA:  onNeutral >= colors.ContrastAA,
			PassesAAA: onNeutral >= colors.ContrastAAA,
		},
		IsColorBlindFriendly: IsColorBlindFriendly([]colors.RGB{primary, secondary, accent}, cb),
	}
}

func textContrast(c colors.RGB) models.TextContrast {
	white := colors.Contrast(colors.White, c)
	black := colors.Contrast(colors.Black, c)
	return models.TextContrast{
		WhiteContrast: round2(white),
		BlackContrast: round2(black),
		PassesAA:      white >= colors.ContrastAA || black >= colors.ContrastAA,
		PassesAAA:     white >= colors.ContrastAAA || black >= colors.ContrastAAA,
	}
}

// IsColorBlindFriendly is true when some color has a red/green channel gap
// above cfg.ChannelDelta and some pair differs in relative luminance by more
// than cfg.LuminanceDelta.
func IsColorBlindFriendly(roles []colors.RGB, cfg ColorBlindConfig) bool {
	redGreen := false
	for _, c := range roles {
		if abs(c.R-c.G) > cfg.ChannelDelta {
			redGreen = true
			break
		}
	}
	if !redGreen {
		return false
	}

	for i := range roles {
		for j := i + 1; j < len(roles); j++ {
			d := math.Abs(colors.RelativeLuminance(roles[i]) - colors.RelativeLuminance(roles[j]))
			if d > cfg.LuminanceDelta {
				return true
			}
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
