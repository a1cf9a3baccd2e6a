package layout

import (
	"math"
	"strings"

	"github.com/abelbrown/parallax/internal/semantic"
)

// Force simulation tuning. Changing these changes the shape of every
// rendered cloud.
const (
	forceIterations = 80
	initialAlpha    = 0.25
	alphaDecay      = 0.975
	repulsionK      = 0.08
	attractionK     = 0.15
	targetEdgeLen   = 0.4
	minDist         = 0.05

	// BoundingRadius is the target radius of the normalized point cloud.
	BoundingRadius = 1.45
)

// Point is a position in the 3D cloud.
type Point [3]float64

type spring struct {
	a, b     int
	strength float64
	restLen  float64
}

// RefinePositions nudges an initial embedding so that semantically
// related terms sit closer together. points[i] is the position of
// terms[i]. The input is not modified; the refined cloud is returned
// re-centered and scaled to BoundingRadius.
func RefinePositions(points []Point, terms []semantic.Term, edges []semantic.Edge) []Point {
	pos := make([]Point, len(points))
	copy(pos, points)
	if len(pos) < 2 {
		return NormalizePointCloud(pos, BoundingRadius)
	}

	index := make(map[string]int, len(terms))
	for i := range terms {
		index[strings.ToLower(strings.TrimSpace(terms[i].Label))] = i
	}

	springs := buildSprings(edges, index)

	forces := make([]Point, len(pos))
	alpha := initialAlpha
	for iter := 0; iter < forceIterations; iter++ {
		for i := range forces {
			forces[i] = Point{}
		}

		// Pairwise repulsion keeps the cloud from collapsing.
		for i := 0; i < len(pos); i++ {
			for j := i + 1; j < len(pos); j++ {
				dx := pos[j][0] - pos[i][0]
				dy := pos[j][1] - pos[i][1]
				dz := pos[j][2] - pos[i][2]
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d < minDist {
					d = minDist
				}
				f := repulsionK / (d * d)
				fx, fy, fz := dx/d*f, dy/d*f, dz/d*f
				forces[i][0] -= fx
				forces[i][1] -= fy
				forces[i][2] -= fz
				forces[j][0] += fx
				forces[j][1] += fy
				forces[j][2] += fz
			}
		}

		// Springs pull related terms toward their rest length.
		for _, s := range springs {
			dx := pos[s.b][0] - pos[s.a][0]
			dy := pos[s.b][1] - pos[s.a][1]
			dz := pos[s.b][2] - pos[s.a][2]
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d < minDist {
				d = minDist
			}
			f := attractionK * s.strength * (d - s.restLen)
			fx, fy, fz := dx/d*f, dy/d*f, dz/d*f
			forces[s.a][0] += fx
			forces[s.a][1] += fy
			forces[s.a][2] += fz
			forces[s.b][0] -= fx
			forces[s.b][1] -= fy
			forces[s.b][2] -= fz
		}

		for i := range pos {
			pos[i][0] += forces[i][0] * alpha
			pos[i][1] += forces[i][1] * alpha
			pos[i][2] += forces[i][2] * alpha
		}
		alpha *= alphaDecay
	}

	return NormalizePointCloud(pos, BoundingRadius)
}

// buildSprings resolves edges to point indices. Edges with an unknown
// endpoint or both ends on the same point are skipped. Strength zero
// reads as unset and takes the 0.5 default; stronger edges get a
// shorter rest length.
func buildSprings(edges []semantic.Edge, index map[string]int) []spring {
	var springs []spring
	for _, e := range edges {
		a, okA := index[strings.ToLower(strings.TrimSpace(e.TermA))]
		b, okB := index[strings.ToLower(strings.TrimSpace(e.TermB))]
		if !okA || !okB || a == b {
			continue
		}
		s := e.Strength
		if s == 0 {
			s = 0.5
		}
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
		springs = append(springs, spring{
			a:        a,
			b:        b,
			strength: s,
			restLen:  targetEdgeLen * (1 - s*0.5),
		})
	}
	return springs
}

// NormalizePointCloud centers a cloud on its centroid and scales it so
// the farthest point sits at radius.
func NormalizePointCloud(points []Point, radius float64) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if len(out) == 0 {
		return out
	}

	var cx, cy, cz float64
	for _, p := range out {
		cx += p[0]
		cy += p[1]
		cz += p[2]
	}
	n := float64(len(out))
	cx, cy, cz = cx/n, cy/n, cz/n

	maxR := 0.0
	for i := range out {
		out[i][0] -= cx
		out[i][1] -= cy
		out[i][2] -= cz
		r := math.Sqrt(out[i][0]*out[i][0] + out[i][1]*out[i][1] + out[i][2]*out[i][2])
		if r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		return out
	}

	scale := radius / maxR
	for i := range out {
		out[i][0] *= scale
		out[i][1] *= scale
		out[i][2] *= scale
	}
	return out
}
