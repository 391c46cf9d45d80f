package css

import (
	"regexp"
	"strings"
)

// Theme carries deck-wide colors (RRGGBB, no hash) and font families. The
// stylesheet overrides fields through a fixed set of class selectors:
//
//	.background { color: #f4f4f9 }
//	.surface    { color: #ffffff }
//	.title      { color: #1f2440; font-family: "Trebuchet MS" }
//	.body       { color: #3a3f58; font-family: "Trebuchet MS" }
//	.accent     { color: #5a67d8 }
//	.accent2    { color: #38a169 }
//	.accent3    { color: #dd6b20 }
type Theme struct {
	Background string
	Surface    string
	TitleColor string
	BodyColor  string
	Accent     string
	Accent2    string
	Accent3    string
	TitleFont  string
	BodyFont   string
}

// DefaultTheme is used when no stylesheet overrides are present.
func DefaultTheme() Theme {
	return Theme{
		Background: "F4F4F9",
		Surface:    "FFFFFF",
		TitleColor: "1F2440",
		BodyColor:  "3A3F58",
		Accent:     "5A67D8",
		Accent2:    "38A169",
		Accent3:    "DD6B20",
		TitleFont:  "Trebuchet MS",
		BodyFont:   "Trebuchet MS",
	}
}

// Accents returns accent colors in rotation order.
func (t *Theme) Accents() []string {
	return []string{t.Accent, t.Accent2, t.Accent3}
}

var themeHexRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ThemeFromStylesheet overlays stylesheet rules on the default theme.
func ThemeFromStylesheet(sheet *Stylesheet) Theme {
	t := DefaultTheme()
	if sheet == nil {
		return t
	}
	for _, r := range sheet.Rules {
		color := parseHexColor(r.Properties["color"])
		font := parseFontFamily(r.Properties["font-family"])
		switch r.Selector {
		case ".background":
			setColor(&t.Background, color)
		case ".surface":
			setColor(&t.Surface, color)
		case ".title":
			setColor(&t.TitleColor, color)
			if font != "" {
				t.TitleFont = font
			}
		case ".body":
			setColor(&t.BodyColor, color)
			if font != "" {
				t.BodyFont = font
			}
		case ".accent":
			setColor(&t.Accent, color)
		case ".accent2":
			setColor(&t.Accent2, color)
		case ".accent3":
			setColor(&t.Accent3, color)
		}
	}
	return t
}

func setColor(dst *string, color string) {
	if color != "" {
		*dst = color
	}
}

func parseHexColor(value string) string {
	if m := themeHexRe.FindStringSubmatch(strings.TrimSpace(value)); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

func parseFontFamily(value string) string {
	if value == "" {
		return ""
	}
	first, _, _ := strings.Cut(value, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}
