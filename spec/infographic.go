package spec

import (
	"regexp"
	"strings"

	"sbc/course"
	"sbc/mermaid"
)

// Limits for the infographic resource.
const (
	MaxDataLines     = 6
	MaxPaletteColors = 6
)

// InfographicSpec is the parsed infografia_tecnica resource.
type InfographicSpec struct {
	Topic          string
	Requires       bool
	DataStructure  []string
	VisualMetaphor string
	MermaidCode    string
	Palette        []string
	IconStyle      string
}

var hexColorRe = regexp.MustCompile(`#?([0-9a-fA-F]{6})\b`)

// affirmatives accepted for requiere_infografia, matched after folding.
var affirmatives = map[string]bool{
	"si": true, "yes": true, "true": true, "verdadero": true, "1": true,
}

// ParseInfographic parses infographic spec text. A fenced block tagged
// "mermaid" wins over an inline codigo_mermaid field as the diagram source.
func ParseInfographic(text, fallbackTopic string) *InfographicSpec {
	is := &InfographicSpec{}

	const (
		secNone = iota
		secData
		secPalette
	)
	current := secNone

	var fenced strings.Builder
	inFence, fenceIsMermaid := false, false

	var inlineCode strings.Builder
	inInlineCode := false

	for line := range strings.Lines(text) {
		line = strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
			} else {
				inFence = true
				fenceIsMermaid = strings.Contains(course.Fold(trimmed), "mermaid")
				// a fence interrupts any inline code continuation
				inInlineCode = false
			}
			continue
		}
		if inFence {
			if fenceIsMermaid {
				fenced.WriteString(line)
				fenced.WriteString("\n")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		if bullet, ok := bulletText(trimmed); ok {
			inInlineCode = false
			switch current {
			case secData:
				if bullet != "" && len(is.DataStructure) < MaxDataLines {
					is.DataStructure = append(is.DataStructure, course.CleanText(bullet))
				}
			case secPalette:
				if m := hexColorRe.FindStringSubmatch(bullet); m != nil {
					is.addColor(m[1])
				}
			}
			continue
		}

		key, value, ok := splitKey(trimmed)
		if !ok {
			if inInlineCode {
				inlineCode.WriteString(line)
				inlineCode.WriteString("\n")
				continue
			}
			current = secNone
			continue
		}
		current = secNone
		inInlineCode = false

		switch key {
		case "tema", "topic":
			is.Topic = course.CleanText(value)
		case "requiere_infografia", "requires_infographic":
			is.Requires = affirmatives[course.Fold(strings.TrimSpace(value))]
		case "estructura_datos", "data_structure":
			current = secData
		case "metafora_visual", "visual_metaphor":
			is.VisualMetaphor = course.CleanText(value)
		case "codigo_mermaid", "mermaid_code":
			inInlineCode = true
			if value != "" {
				inlineCode.WriteString(value)
				inlineCode.WriteString("\n")
			}
		case "paleta_colores", "color_palette", "palette":
			current = secPalette
			for _, m := range hexColorRe.FindAllStringSubmatch(value, -1) {
				is.addColor(m[1])
			}
		case "estilo_iconos", "icon_style":
			is.IconStyle = course.CleanText(value)
		}
	}

	// fenced block has priority over the inline field
	if code := strings.TrimSpace(fenced.String()); code != "" {
		is.MermaidCode = code
	} else {
		is.MermaidCode = strings.TrimSpace(inlineCode.String())
	}

	if is.Topic == "" {
		is.Topic = course.CleanText(fallbackTopic)
	}
	return is
}

func (is *InfographicSpec) addColor(hex string) {
	if len(is.Palette) == MaxPaletteColors {
		return
	}
	hex = strings.ToLower(hex)
	for _, c := range is.Palette {
		if c == hex {
			return
		}
	}
	is.Palette = append(is.Palette, hex)
}

// Graph returns the diagram to render: parsed mermaid source when it yields
// nodes, otherwise a left-to-right chain synthesized from the data structure
// lines (or the topic alone). Nil means raw-text fallback.
func (is *InfographicSpec) Graph() *mermaid.Graph {
	if g := mermaid.Parse(is.MermaidCode); g != nil {
		return g
	}
	if len(is.DataStructure) > 0 {
		return mermaid.Chain(is.DataStructure)
	}
	if is.Topic != "" {
		return mermaid.Chain([]string{is.Topic})
	}
	return nil
}
