package mermaid

import "testing"

func nodeIDs(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func sameIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestParseFlowchart(t *testing.T) {
	src := `flowchart LR
A["Intro"] --> B["Práctica"] --> C["Cierre"]`

	g := Parse(src)
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	if g.Direction != LeftToRight {
		t.Errorf("Direction = %v, want LeftToRight", g.Direction)
	}
	if !sameIDs(nodeIDs(g.Nodes), "A", "B", "C") {
		t.Fatalf("nodes = %v", g.Nodes)
	}
	if g.Nodes[1].Label != "Práctica" {
		t.Errorf("label = %q", g.Nodes[1].Label)
	}
	if len(g.Edges) != 2 || g.Edges[0] != (Edge{From: "A", To: "B"}) || g.Edges[1] != (Edge{From: "B", To: "C"}) {
		t.Errorf("edges = %v", g.Edges)
	}
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Direction
	}{
		{"explicit TB", "flowchart TB\nA[\"x\"] --> B[\"y\"]", TopToBottom},
		{"explicit TD", "graph TD\nA --> B", TopToBottom},
		{"explicit LR", "flowchart LR\nA --> B", LeftToRight},
		{"headerless defaults LR", `A["uno"] --> B["dos"]`, LeftToRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Parse(tc.src)
			if g == nil {
				t.Fatal("Parse() = nil")
			}
			if g.Direction != tc.want {
				t.Errorf("Direction = %v, want %v", g.Direction, tc.want)
			}
		})
	}
}

func TestParseHeaderless(t *testing.T) {
	// synthesized diagram code has no flowchart header, the first line still
	// contributes nodes
	g := Parse(`A["uno"] --> B["dos"]`)
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	if !sameIDs(nodeIDs(g.Nodes), "A", "B") {
		t.Errorf("nodes = %v", g.Nodes)
	}
}

func TestParseUndeclaredEndpoints(t *testing.T) {
	g := Parse("flowchart LR\nstart --> finish")
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	if !sameIDs(nodeIDs(g.Nodes), "start", "finish") {
		t.Fatalf("nodes = %v", g.Nodes)
	}
	if g.Nodes[0].Label != "start" {
		t.Errorf("undeclared node label = %q, want raw id", g.Nodes[0].Label)
	}
}

func TestParseIgnoresUnsupported(t *testing.T) {
	src := `flowchart LR
subgraph cluster
A["uno"] --> B["dos"]
end
click A callback`
	g := Parse(src)
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	if !sameIDs(nodeIDs(g.Nodes), "A", "B") {
		t.Errorf("nodes = %v, want only A and B", g.Nodes)
	}
	if len(g.Edges) != 1 || g.Edges[0] != (Edge{From: "A", To: "B"}) {
		t.Errorf("edges = %v", g.Edges)
	}
}

func TestParseCapsNodes(t *testing.T) {
	src := "flowchart LR\nA --> B --> C --> D --> E --> F --> G --> H"
	g := Parse(src)
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	if len(g.Nodes) != MaxNodes {
		t.Fatalf("nodes = %d, want %d", len(g.Nodes), MaxNodes)
	}
	for _, e := range g.Edges {
		fromOK, toOK := false, false
		for _, n := range g.Nodes {
			if e.From == n.ID {
				fromOK = true
			}
			if e.To == n.ID {
				toOK = true
			}
		}
		if !fromOK || !toOK {
			t.Errorf("edge %v references dropped node", e)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "flowchart LR", "just some prose"} {
		if g := Parse(src); g != nil {
			t.Errorf("Parse(%q) = %v, want nil", src, g)
		}
	}
}

func TestOrderNodesWalk(t *testing.T) {
	g := Parse("flowchart LR\nB[\"dos\"]\nA[\"uno\"]\nA --> B --> C")
	if g == nil {
		t.Fatal("Parse() = nil")
	}
	ordered := nodeIDs(g.OrderNodes())
	if !sameIDs(ordered, "A", "B", "C") {
		t.Errorf("order = %v, want [A B C]", ordered)
	}
}

func TestOrderNodesNoEdges(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}, {ID: "f"}}}
	ordered := g.OrderNodes()
	if len(ordered) != maxOrdered {
		t.Errorf("ordered = %d nodes, want %d", len(ordered), maxOrdered)
	}
	if ordered[0].ID != "a" {
		t.Errorf("order starts at %s, want a", ordered[0].ID)
	}
}

func TestOrderNodesCycle(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []Edge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}},
	}
	ordered := g.OrderNodes()
	if len(ordered) != 3 {
		t.Fatalf("ordered = %v", ordered)
	}
	seen := map[string]bool{}
	for _, n := range ordered {
		if seen[n.ID] {
			t.Errorf("node %s visited twice", n.ID)
		}
		seen[n.ID] = true
	}
}
