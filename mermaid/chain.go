package mermaid

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// maxSlugLen keeps synthesized node ids short enough for debug output.
const maxSlugLen = 18

// Slugify derives a mermaid-safe node id from a label: lowercase ASCII,
// non-alphanumeric runs collapsed to single underscores, clipped to 18 chars.
// Empty result is reported so callers can fall back to an index-based id.
func Slugify(label string) string {
	s := strings.ReplaceAll(slug.Make(label), "-", "_")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return strings.Trim(s, "_")
}

// Chain synthesizes a left-to-right process graph from ordered labels,
// connecting consecutive nodes. Node ids are slugified labels, with an
// index-based fallback on collision or empty slug, so two distinct labels
// never share an id.
func Chain(labels []string) *Graph {
	g := &Graph{Direction: LeftToRight}

	seen := make(map[string]bool, len(labels))
	for i, label := range labels {
		if len(g.Nodes) == MaxNodes {
			break
		}
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		id := Slugify(label)
		if id == "" || seen[id] {
			id = fmt.Sprintf("node_%d", i+1)
		}
		seen[id] = true
		g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
	}

	for i := 1; i < len(g.Nodes); i++ {
		g.Edges = append(g.Edges, Edge{From: g.Nodes[i-1].ID, To: g.Nodes[i].ID})
	}
	if len(g.Nodes) == 0 {
		return nil
	}
	return g
}
