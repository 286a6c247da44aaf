package colors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", hex: "#3b82f6", want: RGB{R: 59, G: 130, B: 246}},
		{name: "without hash", hex: "ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "uppercase", hex: "#FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{name: "shorthand rejected", hex: "#fff", wantErr: true},
		{name: "not hex", hex: "#zzzzzz", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedHex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{
		{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {15, 16, 17}, {59, 130, 246}, {254, 0, 128},
	} {
		t.Run(fmt.Sprint(c), func(t *testing.T) {
			got, err := HexToRGB(RGBToHex(float64(c.R), float64(c.G), float64(c.B)))
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestRGBToHexRoundsAndClamps(t *testing.T) {
	assert.Equal(t, "#000000", RGBToHex(-3, 0.4, 0))
	assert.Equal(t, "#ff0a01", RGBToHex(300, 9.6, 0.5))
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{name: "blue", in: RGB{59, 130, 246}, want: HSL{H: 217, S: 91, L: 60}},
		{name: "red", in: RGB{255, 0, 0}, want: HSL{H: 0, S: 100, L: 50}},
		{name: "green", in: RGB{0, 255, 0}, want: HSL{H: 120, S: 100, L: 50}},
		{name: "magenta", in: RGB{255, 0, 255}, want: HSL{H: 300, S: 100, L: 50}},
		{name: "gray", in: RGB{128, 128, 128}, want: HSL{H: 0, S: 0, L: 50}},
		{name: "white", in: RGB{255, 255, 255}, want: HSL{H: 0, S: 0, L: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.in))
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, HSLToRGB(0, 1, 0.5))
	assert.Equal(t, RGB{0, 0, 255}, HSLToRGB(240.0/360, 1, 0.5))
	assert.Equal(t, RGB{128, 128, 128}, HSLToRGB(0, 0, 0.5))
	assert.Equal(t, RGB{0, 0, 0}, HSLToRGB(0.3, 0.7, 0))
}

func TestConvertColor(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		target Format
		want   string
	}{
		{name: "hex to rgb", color: "#3b82f6", target: FormatRGB, want: "rgb(59, 130, 246)"},
		{name: "hex to hsl", color: "#3b82f6", target: FormatHSL, want: "hsl(217, 91%, 60%)"},
		{name: "rgb to hex", color: "rgb(255, 128, 0)", target: FormatHex, want: "#ff8000"},
		{name: "rgb space separated", color: "rgb(255 128 0)", target: FormatHex, want: "#ff8000"},
		{name: "rgb to hsl", color: "rgb(255, 0, 0)", target: FormatHSL, want: "hsl(0, 100%, 50%)"},
		{name: "hsl to hex", color: "hsl(0, 100%, 50%)", target: FormatHex, want: "#ff0000"},
		{name: "hsl with decimals", color: "hsl(240, 100.0%, 50.00%)", target: FormatRGB, want: "rgb(0, 0, 255)"},
		{name: "hsl space separated", color: "hsl(120 100% 50%)", target: FormatHex, want: "#00ff00"},
		{name: "uppercase prefix", color: "RGB(0, 0, 0)", target: FormatHex, want: "#000000"},
		{name: "unknown format unchanged", color: "cornflowerblue", target: FormatHex, want: "cornflowerblue"},
		{name: "malformed rgb unchanged", color: "rgb(1, 2)", target: FormatHex, want: "rgb(1, 2)"},
		{name: "malformed hex unchanged", color: "#12", target: FormatRGB, want: "#12"},
		{name: "channel out of range unchanged", color: "rgb(300, 0, 0)", target: FormatHex, want: "rgb(300, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertColor(tt.color, tt.target))
		})
	}
}

func TestConvertColorIdempotent(t *testing.T) {
	tests := []struct {
		color  string
		target Format
	}{
		{"#3b82f6", FormatHex},
		{"rgb(10, 20, 30)", FormatRGB},
		{"hsl(217, 91%, 60%)", FormatHSL},
		{"  #abcdef ", FormatHex},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, ConvertColor(tt.color, tt.target), ConvertColor(ConvertColor(tt.color, tt.target), tt.target))
			assert.Contains(t, tt.color, ConvertColor(tt.color, tt.target))
		})
	}
}

func TestConvertColorHexHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#3b82f6", "#ff0000", "#00ff00", "#808080", "#ffffff", "#000000"} {
		t.Run(hex, func(t *testing.T) {
			want, err := HexToRGB(hex)
			require.NoError(t, err)

			got, err := HexToRGB(ConvertColor(ConvertColor(hex, FormatHSL), FormatHex))
			require.NoError(t, err)

			assert.InDelta(t, want.R, got.R, 1)
			assert.InDelta(t, want.G, got.G, 1)
			assert.InDelta(t, want.B, got.B, 1)
		})
	}
}

func TestIsColorLight(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#ffffff", true},
		{"#000000", false},
		{"#3b82f6", false},
		{"#fde047", true},
		{"rgb(250, 250, 250)", true},
		{"rgb(20, 20, 20)", false},
		{"hsl(200, 50%, 70%)", true},
		{"hsl(200, 50%, 30%)", false},
		{"hsl(nope)", true},
		{"not a color", true},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColorLight(tt.color))
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("3B82F6")
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", got)

	got, err = NormalizeHex("#fa0")
	require.NoError(t, err)
	assert.Equal(t, "#ffaa00", got)

	_, err = NormalizeHex("#12345g")
	assert.ErrorIs(t, err, ErrMalformedHex)

	_, err = NormalizeHex("rgb(1, 2, 3)")
	assert.ErrorIs(t, err, ErrMalformedHex)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" HSL ")
	require.NoError(t, err)
	assert.Equal(t, FormatHSL, f)

	_, err = ParseFormat("cmyk")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
