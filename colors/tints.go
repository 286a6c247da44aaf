package colors

const (
	// TintCeiling is the lightness tints approach without reaching.
	TintCeiling = 95.0
	// ShadeFloor is the lightness shades approach without reaching.
	ShadeFloor = 5.0
)

// GenerateTints returns count lighter variants of hex as hsl() strings. The
// lightness steps evenly from the base toward TintCeiling; hue and saturation
// are kept.
func GenerateTints(hex string, count int) ([]string, error) {
	return lightnessSteps(hex, count, TintCeiling)
}

// GenerateShades returns count darker variants of hex as hsl() strings.
func GenerateShades(hex string, count int) ([]string, error) {
	return lightnessSteps(hex, count, ShadeFloor)
}

func lightnessSteps(hex string, count int, bound float64) ([]string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return []string{}, nil
	}

	base := rgb.HSL()
	step := (bound - base.L) / float64(count+1)

	variants := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		variants = append(variants, FormatHSLString(HSL{
			H: base.H,
			S: base.S,
			L: base.L + step*float64(i),
		}))
	}
	return variants, nil
}
