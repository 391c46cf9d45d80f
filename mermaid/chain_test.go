package mermaid

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Práctica guiada", "practica_guiada"},
		{"Cierre", "cierre"},
		{"Qué es Go?", "que_es_go"},
		{"una etiqueta realmente larga", "una_etiqueta_realm"},
		{"", ""},
	}
	for _, tc := range cases {
		got := Slugify(tc.in)
		if got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if len(got) > maxSlugLen {
			t.Errorf("Slugify(%q) longer than %d: %q", tc.in, maxSlugLen, got)
		}
	}
}

func TestChain(t *testing.T) {
	g := Chain([]string{"Intro", "Práctica", "Cierre"})
	if g == nil {
		t.Fatal("Chain() = nil")
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("nodes = %v", g.Nodes)
	}
	if g.Nodes[0].ID != "intro" || g.Nodes[1].ID != "practica" || g.Nodes[2].ID != "cierre" {
		t.Errorf("ids = %v", nodeIDs(g.Nodes))
	}
	if len(g.Edges) != 2 || g.Edges[0] != (Edge{From: "intro", To: "practica"}) {
		t.Errorf("edges = %v", g.Edges)
	}
}

func TestChainCollisions(t *testing.T) {
	// same slug, distinct labels must yield distinct ids
	g := Chain([]string{"Paso", "paso", "PASO"})
	if g == nil {
		t.Fatal("Chain() = nil")
	}
	seen := map[string]bool{}
	for _, n := range g.Nodes {
		if seen[n.ID] {
			t.Fatalf("duplicate id %q in %v", n.ID, g.Nodes)
		}
		seen[n.ID] = true
	}
	if len(g.Nodes) != 3 {
		t.Errorf("nodes = %v", g.Nodes)
	}
}

func TestChainSkipsEmptyAndCaps(t *testing.T) {
	labels := []string{"", "  ", "a", "b", "c", "d", "e", "f", "g"}
	g := Chain(labels)
	if g == nil {
		t.Fatal("Chain() = nil")
	}
	if len(g.Nodes) != MaxNodes {
		t.Errorf("nodes = %d, want %d", len(g.Nodes), MaxNodes)
	}
	if len(g.Edges) != MaxNodes-1 {
		t.Errorf("edges = %d, want %d", len(g.Edges), MaxNodes-1)
	}
}

func TestChainEmpty(t *testing.T) {
	if g := Chain(nil); g != nil {
		t.Errorf("Chain(nil) = %v, want nil", g)
	}
	if g := Chain([]string{"", "   "}); g != nil {
		t.Errorf("Chain(blank) = %v, want nil", g)
	}
}

func TestChainNonLatinLabels(t *testing.T) {
	g := Chain([]string{"第一", "第二"})
	if g == nil {
		t.Fatal("Chain() = nil")
	}
	for i, n := range g.Nodes {
		if n.ID == "" || strings.Contains(n.ID, " ") {
			t.Errorf("node %d id = %q", i, n.ID)
		}
	}
}
