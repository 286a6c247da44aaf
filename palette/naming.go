package palette

import (
	"fmt"

	"github.com/color-game/palette-studio/colors"
)

// Role is a slot in a palette.
type Role string

const (
	RolePrimary      Role = "primary"
	RoleSecondary    Role = "secondary"
	RoleAccent       Role = "accent"
	RoleNeutralLight Role = "neutral-light"
	RoleNeutralDark  Role = "neutral-dark"
)

// PaletteNames rotate by generation ordinal.
var PaletteNames = []string{
	"Oceanic Harmony", "Digital Bloom", "Urban Elegance", "Sunset Gradient",
	"Forest Whisper", "Tech Innovator", "Royal Contrast", "Earthy Balance",
	"Vivid Dimension", "Subtle Professional", "Cosmic Journey", "Mellow Tones",
	"Bold Statement", "Tranquil Space", "Vibrant Clarity", "Minimal Contrast",
	"Deep Ocean", "Soft Dawn", "Electric Vision", "Classic Refined",
}

func PaletteName(index int) string {
	return PaletteNames[positive(index)%len(PaletteNames)]
}

type hueFamily struct {
	name    string
	upTo    float64 // exclusive upper hue bound
	names   []string
	meaning string
}

var grayFamily = hueFamily{
	name:    "gray",
	names:   []string{"Slate Gray", "Charcoal Gray", "Pewter", "Ash", "Stone"},
	meaning: "reads as calm and understated, letting content and imagery lead",
}

var hueFamilies = []hueFamily{
	{
		name:    "red",
		upTo:    15,
		names:   []string{"Ruby Red", "Crimson Red", "Scarlet", "Cherry", "Brick"},
		meaning: "carries energy and urgency, drawing the eye and signalling passion",
	},
	{
		name:    "orange",
		upTo:    45,
		names:   []string{"Sunset Orange", "Tangerine", "Amber", "Copper", "Apricot"},
		meaning: "feels warm and enthusiastic, suggesting friendliness and creativity",
	},
	{
		name:    "yellow",
		upTo:    70,
		names:   []string{"Golden Yellow", "Honey", "Mustard", "Sunflower", "Citrine"},
		meaning: "radiates optimism and clarity, adding a cheerful highlight",
	},
	{
		name:    "green",
		upTo:    165,
		names:   []string{"Forest Green", "Emerald Green", "Mint Green", "Olive Green", "Sage"},
		meaning: "evokes growth and balance, pointing to health and sustainability",
	},
	{
		name:    "cyan",
		upTo:    200,
		names:   []string{"Turquoise Blue", "Teal", "Aqua", "Lagoon", "Seafoam"},
		meaning: "feels fresh and clear, combining the calm of blue with the vitality of green",
	},
	{
		name:    "blue",
		upTo:    250,
		names:   []string{"Ocean Blue", "Sapphire Blue", "Sky Blue", "Navy Blue", "Cobalt"},
		meaning: "evokes trust and reliability, making it ideal for establishing brand authority",
	},
	{
		name:    "purple",
		upTo:    290,
		names:   []string{"Royal Purple", "Amethyst Purple", "Lavender Purple", "Violet", "Plum"},
		meaning: "suggests imagination and luxury, lending a premium character",
	},
	{
		name:    "pink",
		upTo:    345,
		names:   []string{"Magenta Pink", "Coral Pink", "Rose", "Fuchsia", "Blush"},
		meaning: "feels playful and expressive, adding warmth and personality",
	},
}

var neutralLightNames = []string{"Soft White", "Cloud", "Porcelain", "Ivory Mist", "Linen"}
var neutralDarkNames = []string{"Deep Charcoal", "Graphite", "Midnight Ink", "Obsidian", "Shadow"}

func familyFor(c colors.HSL) hueFamily {
	if c.S < 12 {
		return grayFamily
	}
	h := colors.NormalizeHue(c.H)
	for _, f := range hueFamilies {
		if h < f.upTo {
			return f
		}
	}
	// 345..360 wraps back to red
	return hueFamilies[0]
}

func namePrefix(c colors.HSL) string {
	switch {
	case c.L >= 80:
		return "Pale "
	case c.L >= 68:
		return "Light "
	case c.L <= 20:
		return "Deep "
	case c.L <= 32:
		return "Dark "
	case c.S >= 12 && c.S <= 30:
		return "Muted "
	case c.S >= 88:
		return "Vivid "
	}
	return ""
}

// ColorName picks a display name for c from its hue family. ordinal selects
// among the family's names so palettes in one batch vary.
func ColorName(c colors.HSL, role Role, ordinal int) string {
	switch role {
	case RoleNeutralLight:
		return neutralLightNames[positive(ordinal)%len(neutralLightNames)]
	case RoleNeutralDark:
		return neutralDarkNames[positive(ordinal)%len(neutralDarkNames)]
	}
	f := familyFor(c)
	return namePrefix(c) + f.names[positive(ordinal)%len(f.names)]
}

// Meaning describes what c brings to the palette in its role.
func Meaning(c colors.HSL, role Role) string {
	switch role {
	case RoleNeutralLight:
		return "This light neutral creates breathing room and improves readability in text-heavy sections."
	case RoleNeutralDark:
		return "This dark neutral provides strong contrast and depth, excellent for text and important UI elements."
	}

	f := familyFor(c)
	var tone string
	switch {
	case c.L > 70:
		tone = "Its light tone keeps it airy and approachable."
	case c.L < 35:
		tone = "Its deep tone adds weight and sophistication."
	default:
		tone = "Its balanced lightness keeps it versatile across surfaces."
	}

	switch role {
	case RolePrimary:
		return fmt.Sprintf("This %s anchors the brand identity: it %s. %s", f.name, f.meaning, tone)
	case RoleSecondary:
		return fmt.Sprintf("This %s supports the primary color and builds visual hierarchy; it %s. %s", f.name, f.meaning, tone)
	case RoleAccent:
		return fmt.Sprintf("This %s accent draws attention to calls-to-action and highlights; it %s. %s", f.name, f.meaning, tone)
	}
	return fmt.Sprintf("This %s %s. %s", f.name, f.meaning, tone)
}

func positive(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
