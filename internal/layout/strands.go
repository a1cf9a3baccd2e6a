// Package layout arranges semantic terms for display: a BFS radial
// layout for gallery strands and a force-directed refinement for the 3D
// point cloud.
//
// The ring spacing, anchor weighting, and force constants are tuned
// values. Rendered output depends on their exact reproduction.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/abelbrown/parallax/internal/semantic"
)

// RingSpacing is the radius increment per BFS depth level.
const RingSpacing = 100.0

// goldenAngle (~137.5 degrees) spreads sparse rings so nodes don't stack.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Node is one placed term within a strand. Rebuilt on every layout
// invocation, never persisted.
type Node struct {
	Label string
	Term  *semantic.Term
	Depth int
	X, Y  float64
}

// Strand is one independently navigable neighborhood of terms.
type Strand struct {
	Nodes      []Node
	Edges      []semantic.Edge
	Anchor     string
	Discipline int // discipline index for fallback strands, else -1
}

// FindStrands partitions terms into strands: connected components over
// the semantic edges first, then terms untouched by any edge grouped by
// shared discipline. Strands are ordered largest-first within each
// partition, components before discipline groups.
func FindStrands(terms []semantic.Term, edges []semantic.Edge) []Strand {
	if len(terms) == 0 {
		return nil
	}

	labelMap := make(map[string]*semantic.Term, len(terms))
	order := make([]string, 0, len(terms))
	for i := range terms {
		key := strings.ToLower(strings.TrimSpace(terms[i].Label))
		if _, dup := labelMap[key]; dup {
			continue
		}
		labelMap[key] = &terms[i]
		order = append(order, key)
	}

	valid := collectEdges(edges, labelMap)

	var strands []Strand
	claimed := make(map[string]bool)

	if len(valid) > 0 {
		for _, comp := range components(order, valid) {
			if len(comp) < 2 {
				continue
			}
			strands = append(strands, buildStrand(comp, edgesWithin(valid, comp), labelMap, -1))
			for _, l := range comp {
				claimed[l] = true
			}
		}
		sort.SliceStable(strands, func(i, j int) bool {
			return len(strands[i].Nodes) > len(strands[j].Nodes)
		})
	}

	var remaining []string
	for _, l := range order {
		if !claimed[l] {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) >= 2 {
		strands = append(strands, disciplineStrands(remaining, valid, labelMap)...)
	}

	if len(strands) == 0 {
		// Nothing from semantic edges or the leftovers: group the whole
		// pool by discipline so the gallery always has something to show.
		return disciplineStrands(order, valid, labelMap)
	}
	return strands
}

// collectEdges keeps edges whose endpoints both resolve, deduplicated by
// unordered pair.
func collectEdges(edges []semantic.Edge, labelMap map[string]*semantic.Term) []semantic.Edge {
	seen := make(map[string]bool)
	var out []semantic.Edge
	for _, e := range edges {
		a := strings.ToLower(e.TermA)
		b := strings.ToLower(e.TermB)
		if labelMap[a] == nil || labelMap[b] == nil || a == b {
			continue
		}
		key := pairKey(a, b)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// components finds connected components over the edge adjacency,
// seeded in term order for deterministic output.
func components(order []string, edges []semantic.Edge) [][]string {
	adj := adjacency(edges)

	visited := make(map[string]bool)
	var comps [][]string
	for _, seed := range order {
		if visited[seed] || len(adj[seed]) == 0 {
			continue
		}
		var comp []string
		queue := []string{seed}
		visited[seed] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

func adjacency(edges []semantic.Edge) map[string][]string {
	adj := make(map[string][]string)
	for _, e := range edges {
		a := strings.ToLower(e.TermA)
		b := strings.ToLower(e.TermB)
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	return adj
}

func edgesWithin(edges []semantic.Edge, labels []string) []semantic.Edge {
	member := make(map[string]bool, len(labels))
	for _, l := range labels {
		member[l] = true
	}
	var out []semantic.Edge
	for _, e := range edges {
		if member[strings.ToLower(e.TermA)] && member[strings.ToLower(e.TermB)] {
			out = append(out, e)
		}
	}
	return out
}

// disciplineStrands groups terms by their primary discipline slice and
// overlays any semantic edges between group members.
func disciplineStrands(labels []string, edges []semantic.Edge, labelMap map[string]*semantic.Term) []Strand {
	groupOf := func(t *semantic.Term) int {
		if len(t.Slices) > 0 {
			return t.Slices[0]
		}
		return -1
	}

	var groupOrder []int
	groups := make(map[int][]string)
	for _, l := range labels {
		g := groupOf(labelMap[l])
		if _, ok := groups[g]; !ok {
			groupOrder = append(groupOrder, g)
		}
		groups[g] = append(groups[g], l)
	}

	var strands []Strand
	for _, g := range groupOrder {
		members := groups[g]
		if len(members) < 2 {
			continue
		}
		strands = append(strands, buildStrand(members, edgesWithin(edges, members), labelMap, g))
	}
	sort.SliceStable(strands, func(i, j int) bool {
		return len(strands[i].Nodes) > len(strands[j].Nodes)
	})
	return strands
}

// buildStrand runs the BFS radial placement for one strand.
func buildStrand(labels []string, edges []semantic.Edge, labelMap map[string]*semantic.Term, discipline int) Strand {
	adj := adjacency(edges)

	// Anchor: the node that best combines centrality and connectedness.
	anchor := labels[0]
	maxScore := math.Inf(-1)
	for _, l := range labels {
		term := labelMap[l]
		score := term.Centrality*0.4 + float64(len(adj[l]))*0.6
		if score > maxScore {
			maxScore = score
			anchor = l
		}
	}

	// BFS from the anchor assigns integer depths.
	depth := map[string]int{anchor: 0}
	queue := []string{anchor}
	var bfsOrder []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		bfsOrder = append(bfsOrder, cur)
		for _, nb := range adj[cur] {
			if _, seen := depth[nb]; !seen {
				depth[nb] = depth[cur] + 1
				queue = append(queue, nb)
			}
		}
	}

	// Nodes unreached by BFS (disconnected within the strand) trail on
	// outer rings.
	for _, l := range labels {
		if _, seen := depth[l]; !seen {
			max := 0
			for _, d := range depth {
				if d > max {
					max = d
				}
			}
			depth[l] = max + 1
			bfsOrder = append(bfsOrder, l)
		}
	}

	byDepth := make(map[int][]string)
	for _, l := range bfsOrder {
		byDepth[depth[l]] = append(byDepth[depth[l]], l)
	}

	nodes := make([]Node, 0, len(bfsOrder))
	globalIdx := 0
	for _, l := range bfsOrder {
		d := depth[l]
		if d == 0 {
			nodes = append(nodes, Node{Label: l, Term: labelMap[l], Depth: 0})
			continue
		}

		row := byDepth[d]
		idxInRow := 0
		for i, rl := range row {
			if rl == l {
				idxInRow = i
				break
			}
		}

		radius := float64(d) * RingSpacing
		var angle float64
		if len(row) >= 3 {
			// Enough nodes to fill the ring: even spread with a per-ring
			// golden offset so rings don't align.
			angle = float64(d)*goldenAngle + 2*math.Pi*float64(idxInRow)/float64(len(row))
		} else {
			// Sparse ring: global golden-angle sequence avoids stacking.
			angle = float64(globalIdx) * goldenAngle
		}

		nodes = append(nodes, Node{
			Label: l,
			Term:  labelMap[l],
			Depth: d,
			X:     radius * math.Cos(angle),
			Y:     radius * math.Sin(angle),
		})
		globalIdx++
	}

	return Strand{
		Nodes:      nodes,
		Edges:      edges,
		Anchor:     anchor,
		Discipline: discipline,
	}
}
