package spec

import (
	"testing"
)

func TestParseInfographicFields(t *testing.T) {
	src := `
tema: Ciclo de despliegue
requiere_infografia: sí
metafora_visual: tubería
estructura_datos:
- Construir
- Probar
- Desplegar
paleta_colores:
- "#5A67D8"
- 38a169
- #5a67d8
estilo_iconos: flat
`
	is := ParseInfographic(src, "fallback")
	if is.Topic != "Ciclo de despliegue" {
		t.Errorf("Topic = %q", is.Topic)
	}
	if !is.Requires {
		t.Error("Requires = false, want true for 'sí'")
	}
	if is.VisualMetaphor != "tubería" {
		t.Errorf("VisualMetaphor = %q", is.VisualMetaphor)
	}
	if len(is.DataStructure) != 3 || is.DataStructure[1] != "Probar" {
		t.Errorf("DataStructure = %v", is.DataStructure)
	}
	if len(is.Palette) != 2 {
		t.Errorf("Palette = %v, want deduplicated 2 colors", is.Palette)
	}
	if is.Palette[0] != "5a67d8" {
		t.Errorf("Palette[0] = %q, want lowercased", is.Palette[0])
	}
	if is.IconStyle != "flat" {
		t.Errorf("IconStyle = %q", is.IconStyle)
	}
}

func TestParseInfographicRequires(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"sí", true}, {"Si", true}, {"yes", true}, {"TRUE", true}, {"1", true},
		{"no", false}, {"false", false}, {"", false},
	}
	for _, tc := range cases {
		is := ParseInfographic("requiere_infografia: "+tc.value, "")
		if is.Requires != tc.want {
			t.Errorf("Requires(%q) = %v, want %v", tc.value, is.Requires, tc.want)
		}
	}
}

func TestParseInfographicFencedMermaid(t *testing.T) {
	src := "tema: X\n```mermaid\nflowchart LR\nA[\"uno\"] --> B[\"dos\"]\n```\ncodigo_mermaid: C --> D\n"
	is := ParseInfographic(src, "")
	if is.MermaidCode == "" {
		t.Fatal("MermaidCode empty")
	}
	g := is.Graph()
	if g == nil {
		t.Fatal("Graph() = nil")
	}
	// the fenced block wins over the inline field
	if len(g.Nodes) != 2 || g.Nodes[0].ID != "A" {
		t.Errorf("nodes = %v", g.Nodes)
	}
}

func TestParseInfographicInlineMermaid(t *testing.T) {
	src := `tema: X
codigo_mermaid: flowchart LR
A["uno"] --> B["dos"]
estilo_iconos: flat
`
	is := ParseInfographic(src, "")
	g := is.Graph()
	if g == nil {
		t.Fatal("Graph() = nil")
	}
	if len(g.Nodes) != 2 {
		t.Errorf("nodes = %v", g.Nodes)
	}
	if is.IconStyle != "flat" {
		t.Errorf("key after inline code lost: %q", is.IconStyle)
	}
}

func TestInfographicGraphFallbacks(t *testing.T) {
	// no mermaid, data structure chain
	is := ParseInfographic("estructura_datos:\n- Uno\n- Dos\n", "")
	g := is.Graph()
	if g == nil || len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("chain graph = %+v", g)
	}

	// topic only
	is = ParseInfographic("", "Solo tema")
	g = is.Graph()
	if g == nil || len(g.Nodes) != 1 {
		t.Errorf("topic graph = %+v", g)
	}

	// nothing at all
	is = ParseInfographic("", "")
	if g := is.Graph(); g != nil {
		t.Errorf("Graph() = %+v, want nil", g)
	}
}
