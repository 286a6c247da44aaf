package colors

import (
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrMalformedHex  = errors.New("malformed hex color")
	ErrMalformedRGB  = errors.New("malformed rgb color")
	ErrMalformedHSL  = errors.New("malformed hsl color")
	ErrUnknownFormat = errors.New("unknown color format")
)

// Format is one of the three textual color encodings.
type Format string

const (
	FormatHex Format = "hex"
	FormatRGB Format = "rgb"
	FormatHSL Format = "hsl"
)

// ParseFormat maps a user supplied format name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatHex:
		return FormatHex, nil
	case FormatRGB:
		return FormatRGB, nil
	case FormatHSL:
		return FormatHSL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// RGB holds integer channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

func (c RGB) String() string {
	return FormatRGBString(c)
}

func (c HSL) RGB() RGB {
	return HSLToRGB(NormalizeHue(c.H)/360, clamp(c.S, 0, 100)/100, clamp(c.L, 0, 100)/100)
}

func (c HSL) String() string {
	return FormatHSLString(c)
}

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)
	// shorthand is only accepted by NormalizeHex
	userHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern     = regexp.MustCompile(`(?i)^rgb\(\s*(\d+)\s*(?:,\s*|\s+)(\d+)\s*(?:,\s*|\s+)(\d+)\s*\)$`)
	hslPattern     = regexp.MustCompile(`(?i)^hsl\(\s*(\d+(?:\.\d+)?)\s*(?:,\s*|\s+)(\d+(?:\.\d*)?)%\s*(?:,\s*|\s+)(\d+(?:\.\d*)?)%\s*\)$`)
)

// HexToRGB parses a 6 digit hex color with an optional leading '#'.
func HexToRGB(hex string) (RGB, error) {
	matches := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if matches == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
	}
	digits := matches[1]
	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedHex, hex)
		}
		channels[i] = int(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHex rounds each channel and formats it as a zero padded lowercase "#rrggbb".
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", roundChannel(r), roundChannel(g), roundChannel(b))
}

// NormalizeHex validates user input and returns the canonical "#rrggbb" form.
// Shorthand "#rgb" and a missing '#' are accepted.
func NormalizeHex(color string) (string, error) {
	s := strings.TrimSpace(color)
	if !userHexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrMalformedHex, color)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedHex, color, err)
	}
	return c.Hex(), nil
}

// RGBToHSL decomposes a color into hue, saturation and lightness, each rounded
// to the nearest integer.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: NormalizeHue(math.Round(h * 360)),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}
}

// HSLToRGB converts normalized hue, saturation and lightness in [0,1] to RGB.
func HSLToRGB(h, s, l float64) RGB {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return RGB{R: roundChannel(r * 255), G: roundChannel(g * 255), B: roundChannel(b * 255)}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// ParseColor reads any of the three encodings into RGB.
func ParseColor(color string) (RGB, error) {
	s := strings.TrimSpace(color)
	switch {
	case strings.HasPrefix(s, "#"):
		return HexToRGB(s)
	case hasPrefixFold(s, "rgb"):
		return parseRGB(s)
	case hasPrefixFold(s, "hsl"):
		hsl, err := parseHSL(s)
		if err != nil {
			return RGB{}, err
		}
		return hsl.RGB(), nil
	}
	return RGB{}, fmt.Errorf("%w: %q", ErrUnknownFormat, color)
}

// ParseHSL reads an hsl() string without a round trip through RGB.
func ParseHSL(color string) (HSL, error) {
	return parseHSL(strings.TrimSpace(color))
}

func parseRGB(s string) (RGB, error) {
	matches := rgbPattern.FindStringSubmatch(s)
	if matches == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrMalformedRGB, s)
	}
	var channels [3]int
	for i := range channels {
		v, err := strconv.Atoi(matches[i+1])
		if err != nil || v > 255 {
			return RGB{}, fmt.Errorf("%w: %q", ErrMalformedRGB, s)
		}
		channels[i] = v
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseHSL(s string) (HSL, error) {
	matches := hslPattern.FindStringSubmatch(s)
	if matches == nil {
		return HSL{}, fmt.Errorf("%w: %q", ErrMalformedHSL, s)
	}
	var values [3]float64
	for i := range values {
		v, err := strconv.ParseFloat(strings.TrimSuffix(matches[i+1], "."), 64)
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %q", ErrMalformedHSL, s)
		}
		values[i] = v
	}
	if values[1] > 100 || values[2] > 100 {
		return HSL{}, fmt.Errorf("%w: %q", ErrMalformedHSL, s)
	}
	return HSL{H: NormalizeHue(values[0]), S: values[1], L: values[2]}, nil
}

// ConvertColor re-encodes color into the target format. Input that cannot be
// parsed is logged and returned unchanged; a color already in the target
// format is returned as given.
func ConvertColor(color string, target Format) string {
	s := strings.TrimSpace(color)

	var source Format
	switch {
	case strings.HasPrefix(s, "#"):
		source = FormatHex
	case hasPrefixFold(s, "rgb"):
		source = FormatRGB
	case hasPrefixFold(s, "hsl"):
		source = FormatHSL
	default:
		log.Printf("colors: unknown color format %q", color)
		return color
	}

	var (
		rgb RGB
		hsl HSL
		err error
	)
	switch source {
	case FormatHex:
		rgb, err = HexToRGB(s)
		hsl = rgb.HSL()
	case FormatRGB:
		rgb, err = parseRGB(s)
		hsl = rgb.HSL()
	case FormatHSL:
		hsl, err = parseHSL(s)
		rgb = hsl.RGB()
	}
	if err != nil {
		log.Printf("colors: %s format not recognized: %v", source, err)
		return color
	}

	if source == target {
		return s
	}

	switch target {
	case FormatHex:
		return rgb.Hex()
	case FormatRGB:
		return FormatRGBString(rgb)
	case FormatHSL:
		return FormatHSLString(hsl)
	}
	log.Printf("colors: unknown target format %q", target)
	return color
}

// IsColorLight reports whether color reads as light. HSL input uses its
// lightness; otherwise perceived brightness is used. Anything unparseable is
// treated as light.
func IsColorLight(color string) bool {
	s := strings.TrimSpace(color)
	if hasPrefixFold(s, "hsl") {
		hsl, err := parseHSL(s)
		if err != nil {
			return true
		}
		return hsl.L > 50
	}

	rgb, err := ParseColor(s)
	if err != nil {
		return true
	}
	return PerceivedBrightness(rgb) > 0.5
}

// PerceivedBrightness returns (0.299R + 0.587G + 0.114B) / 255.
func PerceivedBrightness(c RGB) float64 {
	return (float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114) / 255
}

func FormatRGBString(c RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func FormatHSLString(c HSL) string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
}

// formatNumber prints at most two decimals and drops trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func roundChannel(v float64) int {
	return int(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
