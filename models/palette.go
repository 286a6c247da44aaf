package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/color-game/palette-studio/colors"
)

// ColorInfo is a labeled color in all three encodings.
type ColorInfo struct {
	Name    string `json:"name" yaml:"name"`
	Hex     string `json:"hex" yaml:"hex"`
	RGB     string `json:"rgb" yaml:"rgb"`
	HSL     string `json:"hsl" yaml:"hsl"`
	Meaning string `json:"meaning" yaml:"meaning"`
}

type TextContrast struct {
	WhiteContrast float64 `json:"whiteContrast" yaml:"whiteContrast"`
	BlackContrast float64 `json:"blackContrast" yaml:"blackContrast"`
	PassesAA      bool    `json:"passesAA" yaml:"passesAA"`
	PassesAAA     bool    `json:"passesAAA" yaml:"passesAAA"`
}

type NeutralContrast struct {
	Contrast  float64 `json:"contrast" yaml:"contrast"`
	PassesAA  bool    `json:"passesAA" yaml:"passesAA"`
	PassesAAA bool    `json:"passesAAA" yaml:"passesAAA"`
}

type PaletteAccessibility struct {
	TextOnPrimary        TextContrast    `json:"textOnPrimary" yaml:"textOnPrimary"`
	TextOnSecondary      TextContrast    `json:"textOnSecondary" yaml:"textOnSecondary"`
	TextOnAccent         TextContrast    `json:"textOnAccent" yaml:"textOnAccent"`
	PrimaryOnNeutral     NeutralContrast `json:"primaryOnNeutral" yaml:"primaryOnNeutral"`
	IsColorBlindFriendly bool            `json:"isColorBlindFriendly" yaml:"isColorBlindFriendly"`
}

type Neutral struct {
	Light ColorInfo `json:"light" yaml:"light"`
	Dark  ColorInfo `json:"dark" yaml:"dark"`
}

type Reasoning struct {
	BrandGoals             string `json:"brandGoals" yaml:"brandGoals"`
	AccessibilityReasoning string `json:"accessibilityReasoning" yaml:"accessibilityReasoning"`
	HarmonyExplanation     string `json:"harmonyExplanation" yaml:"harmonyExplanation"`
}

// Palette is one generated brand palette.
type Palette struct {
	ID            string               `json:"id" yaml:"id"`
	Name          string               `json:"name" yaml:"name"`
	Pattern       string               `json:"pattern" yaml:"pattern"`
	Primary       ColorInfo            `json:"primary" yaml:"primary"`
	Secondary     ColorInfo            `json:"secondary" yaml:"secondary"`
	Accent        ColorInfo            `json:"accent" yaml:"accent"`
	Neutral       Neutral              `json:"neutral" yaml:"neutral"`
	Accessibility PaletteAccessibility `json:"accessibility" yaml:"accessibility"`
	Reasoning     Reasoning            `json:"reasoning" yaml:"reasoning"`
}

// Validate checks the fields a stored palette must carry.
func (p Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("palette name is required")
	}
	if strings.Contains(p.Name, "*/") {
		return fmt.Errorf("palette name may not contain %q", "*/")
	}
	roles := map[string]ColorInfo{
		"primary":       p.Primary,
		"secondary":     p.Secondary,
		"accent":        p.Accent,
		"neutral.light": p.Neutral.Light,
		"neutral.dark":  p.Neutral.Dark,
	}
	for role, c := range roles {
		if c.Hex == "" {
			return fmt.Errorf("palette %s color is missing a hex value", role)
		}
		if _, err := colors.NormalizeHex(c.Hex); err != nil {
			return fmt.Errorf("palette %s color: %w", role, err)
		}
	}
	return nil
}

func (p Palette) Serialize() ([]byte, error) {
	jsonPalette, err := json.Marshal(p)
	if err != nil {
		return []byte{}, fmt.Errorf("error encoding json for Palette %v", err)
	}
	return jsonPalette, nil
}

// GeneratePalettesRequest is the body of POST /v1/palettes/generate.
type GeneratePalettesRequest struct {
	BrandColors []string `json:"brandColors"`
}

type GeneratePalettesResponse struct {
	Palettes []Palette `json:"palettes"`
}
