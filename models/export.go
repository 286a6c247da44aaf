package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/color-game/palette-studio/colors"
	"gopkg.in/yaml.v3"
)

type ExportFormat string

const (
	ExportCSS  ExportFormat = "css"
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

func ParseExportFormat(name string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return ExportCSS, nil
	case ExportCSS, ExportJSON, ExportYAML:
		return f, nil
	case "yml":
		return ExportYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", name)
}

// ContentType is the MIME type an export is served with.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportJSON:
		return "application/json"
	case ExportYAML:
		return "application/yaml"
	}
	return "text/css; charset=utf-8"
}

// Export renders p in the requested format.
func (p Palette) Export(format ExportFormat) ([]byte, error) {
	switch format {
	case ExportCSS:
		return []byte(p.CSSVariables()), nil
	case ExportJSON:
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding palette json: %w", err)
		}
		return out, nil
	case ExportYAML:
		out, err := yaml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("error encoding palette yaml: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// CSSVariables renders the palette as custom property declarations on :root.
// Roles without a valid hex are left out and the name cannot close its comment.
func (p Palette) CSSVariables() string {
	roles := []struct {
		name  string
		color ColorInfo
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"neutral-light", p.Neutral.Light},
		{"neutral-dark", p.Neutral.Dark},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "/* %s */\n:root {\n", strings.ReplaceAll(p.Name, "*/", "* /"))
	for _, r := range roles {
		hex, err := colors.NormalizeHex(r.color.Hex)
		if err != nil {
			continue
		}
		rgb, err := colors.HexToRGB(hex)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "  --color-%s: %s;\n", r.name, hex)
		fmt.Fprintf(&b, "  --color-%s-rgb: %d, %d, %d;\n", r.name, rgb.R, rgb.G, rgb.B)
	}
	b.WriteString("}\n")
	return b.String()
}
