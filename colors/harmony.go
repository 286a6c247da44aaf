package colors

import (
	"fmt"
	"strings"
)

// Pattern names a rule for picking related hues from a base hue.
type Pattern string

const (
	Complementary      Pattern = "complementary"
	Analogous          Pattern = "analogous"
	Triadic            Pattern = "triadic"
	SplitComplementary Pattern = "split-complementary"
	Square             Pattern = "square"
	Monochromatic      Pattern = "monochromatic"
)

// Patterns in the order palette generation cycles through them.
var Patterns = []Pattern{
	Complementary,
	Analogous,
	Triadic,
	SplitComplementary,
	Square,
	Monochromatic,
}

// MaxHarmonyColors caps Harmony output, base included.
const MaxHarmonyColors = 6

var patternAliases = map[string]Pattern{
	"complement": Complementary,
	"analogic":   Analogous,
	"triad":      Triadic,
	"split":      SplitComplementary,
	"tetradic":   Square,
	"mono":       Monochromatic,
}

func ParsePattern(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Patterns {
		if string(p) == key {
			return p, nil
		}
	}
	if p, ok := patternAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown harmony pattern %q", name)
}

// offset is applied to the base color; hue wraps, s and l are clamped to the
// rule's band.
type offset struct {
	h, s, l float64
}

type harmonyRule struct {
	offsets    []offset
	minS, maxS float64
	minL, maxL float64
}

var harmonyRules = map[Pattern]harmonyRule{
	Complementary: {
		offsets: []offset{
			{h: 180},
			{h: 180, s: -15, l: 20},
			{h: 0, s: 20, l: -15},
			{h: 180, s: 15, l: -25},
		},
		minS: 0, maxS: 100, minL: 0, maxL: 100,
	},
	Analogous: {
		offsets: []offset{
			{h: 30},
			{h: -30},
			{h: 60, s: -10, l: 10},
			{h: -60, s: -10, l: -10},
		},
		minS: 0, maxS: 100, minL: 20, maxL: 80,
	},
	Triadic: {
		offsets: []offset{
			{h: 120},
			{h: 240},
			{h: 120, s: -20, l: 10},
			{h: 240, s: -20, l: -10},
		},
		minS: 0, maxS: 100, minL: 0, maxL: 100,
	},
	SplitComplementary: {
		offsets: []offset{
			{h: 150},
			{h: 210},
			{h: 150, l: 15},
			{h: 210, l: -15},
		},
		minS: 0, maxS: 100, minL: 10, maxL: 90,
	},
	Square: {
		offsets: []offset{
			{h: 90},
			{h: 180},
			{h: 270},
			{h: 45, s: -20},
		},
		minS: 0, maxS: 100, minL: 0, maxL: 100,
	},
	Monochromatic: {
		offsets: []offset{
			{l: 20},
			{l: -20},
			{s: -20, l: 10},
			{s: 10, l: -10},
		},
		minS: 0, maxS: 100, minL: 20, maxL: 80,
	},
}

// Harmony returns base followed by the related colors of pattern. An unknown
// pattern yields only the base.
func Harmony(base HSL, pattern Pattern) []HSL {
	out := []HSL{base}
	rule, ok := harmonyRules[pattern]
	if !ok {
		return out
	}
	for _, o := range rule.offsets {
		if len(out) == MaxHarmonyColors {
			break
		}
		out = append(out, HSL{
			H: NormalizeHue(base.H + o.h),
			S: clamp(base.S+o.s, rule.minS, rule.maxS),
			L: clamp(base.L+o.l, rule.minL, rule.maxL),
		})
	}
	return out
}

// RelatedColor derives a single color from base. index fans successive calls
// out (0 for a secondary role, 1 for an accent, and so on).
func RelatedColor(base HSL, pattern Pattern, index int) HSL {
	if index < 0 {
		index = 0
	}
	odd := index%2 == 1
	sign := 1.0
	if odd {
		sign = -1
	}

	var o offset
	switch pattern {
	case Complementary:
		o.h = 180 + 15*float64(index)
		if odd {
			o.s, o.l = -15, 20
		}
	case Analogous:
		step := 30 * float64((index+2)/2)
		o.h = sign * step
		o.s = -5 * float64(index)
		o.l = sign * 5
	case Triadic:
		o.h = 120 * float64(index%2+1)
		o.s = -10 * float64(index/2)
	case SplitComplementary:
		o.h = 150
		if odd {
			o.h = 210
		}
		o.l = sign * 10 * float64(index/2)
	case Square:
		o.h = 90 * float64(index%3+1)
		o.s = -10 * float64(index/3)
	case Monochromatic:
		o.l = sign * 20 * float64(index/2+1)
		if odd {
			o.s = -10
		}
	default:
		return base
	}

	return HSL{
		H: NormalizeHue(base.H + o.h),
		S: clamp(base.S+o.s, 0, 100),
		L: clamp(base.L+o.l, 10, 90),
	}
}
