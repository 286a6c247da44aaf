package colors

import "math"

// WCAG thresholds.
const (
	ContrastAA    = 4.5
	ContrastAAA   = 7.0
	ContrastMinUI = 3.0
)

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// ContrastRating is a contrast ratio with its WCAG verdicts.
type ContrastRating struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"passesAA"`
	AAA   bool    `json:"passesAAA"`
	UI    bool    `json:"passesUI"`
}

// RelativeLuminance is the WCAG luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Contrast returns the WCAG contrast ratio of a and b, in [1,21].
func Contrast(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastRatio parses both colors (hex, rgb() or hsl()) and returns their contrast.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseColor(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseColor(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

func Rating(ratio float64) ContrastRating {
	return ContrastRating{
		Ratio: ratio,
		AA:    ratio >= ContrastAA,
		AAA:   ratio >= ContrastAAA,
		UI:    ratio >= ContrastMinUI,
	}
}
