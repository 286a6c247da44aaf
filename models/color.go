package models

import "github.com/color-game/palette-studio/colors"

// ColorEncodings carries one color in every textual encoding.
type ColorEncodings struct {
	Hex string `json:"hex"`
	RGB string `json:"rgb"`
	HSL string `json:"hsl"`
}

func NewColorEncodings(c colors.RGB) ColorEncodings {
	return ColorEncodings{
		Hex: c.Hex(),
		RGB: colors.FormatRGBString(c),
		HSL: colors.FormatHSLString(c.HSL()),
	}
}

type ConvertRequest struct {
	Color  string `json:"color"`
	Format string `json:"format"`
}

type ConvertResponse struct {
	Color  string `json:"color"`
	Format string `json:"format"`
	Result string `json:"result"`
}

type InspectResponse struct {
	ColorEncodings
	Name    string `json:"name"`
	IsLight bool   `json:"isLight"`
}

type TintsRequest struct {
	Color  string `json:"color"`
	Tints  int    `json:"tints"`
	Shades int    `json:"shades"`
}

type TintsResponse struct {
	Base   string   `json:"base"`
	Tints  []string `json:"tints"`
	Shades []string `json:"shades"`
}

type ContrastRequest struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type ContrastResponse struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colors.ContrastRating
}

type HarmonyRequest struct {
	Color   string `json:"color"`
	Pattern string `json:"pattern"`
}

type HarmonyResponse struct {
	Pattern string           `json:"pattern"`
	Colors  []ColorEncodings `json:"colors"`
}

type AdjustRequest struct {
	Color     string  `json:"color"`
	Reference string  `json:"reference"`
	Target    float64 `json:"target"`
}

type AdjustResponse struct {
	Original   string         `json:"original"`
	Reference  string         `json:"reference"`
	Target     float64        `json:"target"`
	Adjusted   ColorEncodings `json:"adjusted"`
	Contrast   float64        `json:"contrast"`
	Iterations int            `json:"iterations"`
	MetTarget  bool           `json:"metTarget"`
}
