package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePalette() Palette {
	return Palette{
		ID:        "p-1",
		Name:      "Oceanic Harmony",
		Pattern:   "complementary",
		Primary:   ColorInfo{Name: "Ocean Blue", Hex: "#3b82f6", RGB: "rgb(59, 130, 246)", HSL: "hsl(217, 91%, 60%)"},
		Secondary: ColorInfo{Name: "Amber", Hex: "#f6af3c"},
		Accent:    ColorInfo{Name: "Pale Amber", Hex: "#f9d49a"},
		Neutral: Neutral{
			Light: ColorInfo{Name: "Soft White", Hex: "#f1f3f7"},
			Dark:  ColorInfo{Name: "Deep Charcoal", Hex: "#272c35"},
		},
	}
}

func TestCSSVariables(t *testing.T) {
	css := samplePalette().CSSVariables()

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "  --color-primary: #3b82f6;\n")
	assert.Contains(t, css, "  --color-primary-rgb: 59, 130, 246;\n")
	assert.Contains(t, css, "  --color-neutral-light: #f1f3f7;\n")
	assert.Contains(t, css, "  --color-neutral-dark: #272c35;\n")
	assert.Contains(t, css, "/* Oceanic Harmony */")
}

func TestExportFormats(t *testing.T) {
	p := samplePalette()

	out, err := p.Export(ExportJSON)
	require.NoError(t, err)
	var decoded Palette
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, p, decoded)

	out, err = p.Export(ExportYAML)
	require.NoError(t, err)
	var fromYAML map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, "Oceanic Harmony", fromYAML["name"])

	_, err = p.Export(ExportFormat("pdf"))
	assert.Error(t, err)
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{in: "", want: ExportCSS},
		{in: "CSS", want: ExportCSS},
		{in: "json", want: ExportJSON},
		{in: "yml", want: ExportYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseExportFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestPaletteValidate(t *testing.T) {
	assert.NoError(t, samplePalette().Validate())

	p := samplePalette()
	p.Neutral.Dark.Hex = ""
	assert.Error(t, p.Validate())

	p = samplePalette()
	p.Name = ""
	assert.Error(t, p.Validate())

	p = samplePalette()
	p.Primary.Hex = "#fff; } body { display: none"
	assert.Error(t, p.Validate())

	p = samplePalette()
	p.Accent.Hex = "purple"
	assert.Error(t, p.Validate())

	p = samplePalette()
	p.Name = "x */ body{color:red} /*"
	assert.Error(t, p.Validate())

	p = samplePalette()
	p.Secondary.Hex = "#FA0"
	assert.NoError(t, p.Validate())
}

func TestCSSVariablesRejectsInjection(t *testing.T) {
	p := samplePalette()
	p.Name = "x */ body{color:red} /*"
	p.Primary.Hex = "#fff; } body { display: none"
	p.Secondary.Hex = "#FA0"

	css := p.CSSVariables()
	assert.NotContains(t, css, "x */")
	assert.Equal(t, 1, strings.Count(css, "*/"))
	assert.NotContains(t, css, "display: none")
	assert.NotContains(t, css, "--color-primary:")
	assert.Contains(t, css, "  --color-secondary: #ffaa00;\n")
	assert.Equal(t, 1, strings.Count(css, "}"))
}

func TestSavedPaletteEditKey(t *testing.T) {
	saved, editKey, err := NewSavedPalette(samplePalette())
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, saved.ID, saved.Palette.ID)
	assert.NotEqual(t, editKey, saved.EditKeyHash)
	assert.NoError(t, saved.CheckEditKey(editKey))
	assert.ErrorIs(t, saved.CheckEditKey("wrong"), ErrInvalidEditKey)

	encoded, err := json.Marshal(saved)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), saved.EditKeyHash)
}

func TestShareToken(t *testing.T) {
	token, expiry, err := NewShareToken("palette-42", "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)

	claims, err := ValidateScopedToken(token, "secret", ScopeShare)
	require.NoError(t, err)
	assert.Equal(t, "palette-42", claims.PaletteID)

	_, err = ValidateScopedToken(token, "secret", ScopeAdmin)
	assert.Error(t, err)

	_, err = ValidateJWTToken(token, "other-secret")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	token, _, err := NewAdminToken("ops", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWTToken(token, "secret")
	assert.Error(t, err)
}

func TestDailyPaletteResponse(t *testing.T) {
	dp := DailyPalette{
		Date:    time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		BaseHex: "#3b82f6",
		Palette: samplePalette(),
	}
	resp := dp.Response()
	assert.Equal(t, "2026-03-09", resp.Date)
	assert.Equal(t, "#3b82f6", resp.BaseHex)
}
