// Package mermaid implements a deliberately narrow flowchart-dialect parser:
// a direction header, id["label"] node declarations and arrow-chain edges.
// Anything else the language allows (subgraphs, classes, click handlers) is
// ignored on purpose - diagram source comes from an LLM and is rendered into
// a slide inset, not a browser.
package mermaid

import (
	"regexp"
	"strings"
)

// Direction of graph rendering.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// MaxNodes caps how many nodes survive parsing - a slide inset cannot
// meaningfully show more.
const MaxNodes = 6

// maxOrdered caps how many nodes rendering order yields.
const maxOrdered = 5

type Node struct {
	ID    string
	Label string
}

type Edge struct {
	From string
	To   string
}

type Graph struct {
	Direction Direction
	Nodes     []Node
	Edges     []Edge
}

var (
	nodeDeclRe = regexp.MustCompile(`([A-Za-z0-9_]+)\s*\[\s*"?([^\]"]*)"?\s*\]`)
	tokenRe    = regexp.MustCompile(`([A-Za-z0-9_]+)|([-.=<>]+)`)
)

// Parse extracts nodes and edges from restricted flowchart text. Returns nil
// when no nodes are found - callers then fall back to rendering the raw text.
func Parse(src string) *Graph {
	g := &Graph{Direction: LeftToRight}

	index := make(map[string]int)
	addNode := func(id, label string) {
		if _, ok := index[id]; ok {
			return
		}
		index[id] = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{ID: id, Label: label})
	}

	directionSet := false
	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !directionSet {
			// first non-empty line decides direction whether or not it is a
			// proper header, "lr" is the default either way
			directionSet = true
			folded := strings.ToLower(line)
			if strings.Contains(folded, "tb") || strings.Contains(folded, "td") {
				g.Direction = TopToBottom
			}
		}
		if isHeaderLine(line) {
			continue
		}

		// declared nodes keep their quoted labels
		for _, m := range nodeDeclRe.FindAllStringSubmatch(line, -1) {
			label := strings.TrimSpace(m[2])
			if label == "" {
				label = m[1]
			}
			addNode(m[1], label)
		}

		// arrow chains: strip labels, then link consecutive ids separated by
		// dash/dot/arrow runs; endpoints never declared register with their
		// raw id as label
		bare := nodeDeclRe.ReplaceAllString(line, "$1")
		prev, linked := "", false
		for _, m := range tokenRe.FindAllStringSubmatch(bare, -1) {
			switch {
			case m[1] != "":
				if linked && prev != "" {
					addNode(prev, prev)
					addNode(m[1], m[1])
					g.Edges = append(g.Edges, Edge{From: prev, To: m[1]})
				}
				prev, linked = m[1], false
			case strings.ContainsAny(m[2], "-."):
				linked = true
			}
		}
	}

	if len(g.Nodes) == 0 {
		return nil
	}

	if len(g.Nodes) > MaxNodes {
		g.Nodes = g.Nodes[:MaxNodes]
	}
	survived := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		survived[n.ID] = true
	}
	edges := g.Edges[:0]
	for _, e := range g.Edges {
		if survived[e.From] && survived[e.To] {
			edges = append(edges, e)
		}
	}
	g.Edges = edges
	return g
}

func isHeaderLine(line string) bool {
	folded := strings.ToLower(line)
	return strings.HasPrefix(folded, "flowchart") || strings.HasPrefix(folded, "graph")
}

// OrderNodes returns a deterministic best-effort process order: start from a
// node nothing points at, greedily walk outgoing edges, then append leftovers
// in declaration order. Works for malformed and cyclic input too.
func (g *Graph) OrderNodes() []Node {
	if len(g.Edges) == 0 {
		if len(g.Nodes) > maxOrdered {
			return g.Nodes[:maxOrdered]
		}
		return g.Nodes
	}

	indegree := make(map[string]int, len(g.Nodes))
	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		indegree[n.ID] = 0
		byID[n.ID] = n
	}
	for _, e := range g.Edges {
		indegree[e.To]++
	}

	start := g.Nodes[0]
	for _, n := range g.Nodes {
		if indegree[n.ID] == 0 {
			start = n
			break
		}
	}

	ordered := make([]Node, 0, maxOrdered)
	visited := make(map[string]bool, len(g.Nodes))
	cur := start
	for len(ordered) < maxOrdered {
		ordered = append(ordered, cur)
		visited[cur.ID] = true

		next, found := Node{}, false
		for _, e := range g.Edges {
			if e.From == cur.ID && !visited[e.To] {
				next, found = byID[e.To], true
				break
			}
		}
		if !found {
			break
		}
		cur = next
	}

	for _, n := range g.Nodes {
		if len(ordered) == maxOrdered {
			break
		}
		if !visited[n.ID] {
			ordered = append(ordered, n)
			visited[n.ID] = true
		}
	}
	return ordered
}
