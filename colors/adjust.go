package colors

import (
	"log"
	"math"
)

// AdjustConfig tunes the lightness walk in AdjustForContrast.
type AdjustConfig struct {
	Step          float64 // lightness points per iteration
	Tolerance     float64 // accepted distance from the target ratio
	MaxIterations int
	MinLightness  float64
	MaxLightness  float64
}

func DefaultAdjustConfig() AdjustConfig {
	return AdjustConfig{
		Step:          5,
		Tolerance:     0.2,
		MaxIterations: 20,
		MinLightness:  5,
		MaxLightness:  95,
	}
}

// AdjustResult is the best effort outcome; there is no failure signal when
// Contrast misses the target.
type AdjustResult struct {
	HSL        HSL     `json:"hsl"`
	Color      RGB     `json:"rgb"`
	Contrast   float64 `json:"contrast"`
	Iterations int     `json:"iterations"`
}

// AdjustForContrast walks the lightness of color in fixed steps until its
// contrast against reference is within tolerance of target. The direction is
// chosen once from the starting contrast: too little contrast moves away from
// the reference, too much moves toward it. The walk also ends at the
// iteration cap, at the lightness bounds, or once the target has been passed.
func AdjustForContrast(color HSL, reference RGB, target float64, cfg AdjustConfig) AdjustResult {
	current := color
	rgb := current.RGB()
	contrast := Contrast(rgb, reference)
	result := AdjustResult{HSL: current, Color: rgb, Contrast: contrast}

	if math.Abs(contrast-target) <= cfg.Tolerance || cfg.Step <= 0 {
		return result
	}

	below := contrast < target
	// away from the reference means darker when the reference is the lighter color
	dir := 1.0
	if RelativeLuminance(reference) >= RelativeLuminance(rgb) {
		dir = -1
	}
	if !below {
		dir = -dir
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		if (dir < 0 && current.L <= cfg.MinLightness) || (dir > 0 && current.L >= cfg.MaxLightness) {
			break
		}
		current.L = clamp(current.L+dir*cfg.Step, cfg.MinLightness, cfg.MaxLightness)
		rgb = current.RGB()
		contrast = Contrast(rgb, reference)
		result = AdjustResult{HSL: current, Color: rgb, Contrast: contrast, Iterations: i + 1}

		if math.Abs(contrast-target) <= cfg.Tolerance {
			break
		}
		if (contrast >= target) == below {
			break
		}
	}
	return result
}

// AdjustColorForContrast is the string form of AdjustForContrast with the
// default tuning. The result is a hex color. Input that does not parse is
// logged and color is returned unchanged.
func AdjustColorForContrast(color, reference string, target float64) string {
	c, err := ParseColor(color)
	if err != nil {
		log.Printf("colors: cannot adjust %q: %v", color, err)
		return color
	}
	ref, err := ParseColor(reference)
	if err != nil {
		log.Printf("colors: cannot adjust against %q: %v", reference, err)
		return color
	}
	return AdjustForContrast(c.HSL(), ref, target, DefaultAdjustConfig()).Color.Hex()
}
