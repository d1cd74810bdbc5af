package smooth

import (
	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// Path recomputes the Ctrl1/Ctrl2 control points of every CurveTo
// node in p, in place, so the path flows smoothly through its
// AutoSmooth nodes while respecting Cusp nodes' user-set control
// points and Smooth/Symmetrical nodes left untouched by this pass
// (spec §4.3 — node-type-driven resmoothing runs after every edit
// that can change the node graph).
//
// Paths with fewer than two nodes have no segments and are left
// unchanged.
func Path(p *warppath.Path) {
	nodes := p.Nodes()
	n := len(nodes)
	if n < 2 {
		return
	}
	segments := n - 1

	points := make([]geom.Vec2, n)
	for i, nd := range nodes {
		points[i] = nd.Point()
	}

	c1 := make([]geom.Vec2, segments)
	c2 := make([]geom.Vec2, segments)
	for i := 1; i < n; i++ {
		if nodes[i].Kind == warppath.CurveTo {
			c1[i-1] = nodes[i].Ctrl1
			c2[i-1] = nodes[i].Ctrl2
		}
	}

	eqns := make([]equation, segments)
	for i := 0; i < segments; i++ {
		start := nodes[i]
		next := nodes[i+1]
		var prev, nextNext *warppath.Node
		if i > 0 {
			prev = nodes[i-1]
		}
		if i+2 < n {
			nextNext = nodes[i+2]
		}
		eqns[i] = chooseEquation(segmentFlags{
			autosmooth:     start.NodeType == warppath.AutoSmooth,
			nextAutosmooth: next.NodeType == warppath.AutoSmooth,
			firstseg:       prev == nil || start.Kind != warppath.CurveTo,
			lastseg:        nextNext == nil || nextNext.Kind != warppath.CurveTo,
			lineseg:        next.Kind == warppath.LineTo,
		})
	}

	a := make([]float64, segments)
	b := make([]float64, segments)
	c := make([]float64, segments)
	d := make([]geom.Vec2, segments)
	for i, eq := range eqns {
		switch eq {
		case eqStraightSmooth:
			a[i], b[i], c[i] = 0, 2, 1
			d[i] = points[i].Add(points[i+1].Mul(2))
		case eqSmoothSmooth:
			a[i], b[i], c[i] = 1, 4, 1
			d[i] = points[i].Mul(4).Add(points[i+1].Mul(2))
		case eqSmoothStraight:
			a[i], b[i], c[i] = 2, 7, 0
			d[i] = points[i].Mul(8).Add(points[i+1])
		case eqKeepSmooth, eqKeepKeep, eqKeepStraight:
			a[i], b[i], c[i] = 0, 1, 0
			d[i] = c1[i]
		case eqSmoothKeep:
			a[i], b[i], c[i] = 1, 4, 0
			d[i] = points[i].Mul(4).Add(c2[i])
		case eqStraightStraight:
			a[i], b[i], c[i] = 0, 3, 0
			d[i] = points[i].Mul(2).Add(points[i+1])
		case eqStraightKeep:
			a[i], b[i], c[i] = 0, 2, 0
			d[i] = points[i].Add(c2[i])
		}
	}

	solvedC1 := solveTridiagonal(a, b, c, d)

	for i, eq := range eqns {
		switch eq {
		case eqKeepKeep, eqSmoothKeep, eqStraightKeep:
			// c2 keeps its seeded (user-set) value.
		case eqSmoothStraight, eqKeepStraight, eqStraightStraight:
			c2[i] = solvedC1[i].Add(points[i+1]).Mul(0.5)
		default:
			c2[i] = points[i+1].Mul(2).Sub(solvedC1[i+1])
		}
	}

	for i := 0; i < segments; i++ {
		target := nodes[i+1]
		if target.Kind == warppath.CurveTo {
			target.Ctrl1 = solvedC1[i]
			target.Ctrl2 = c2[i]
		}
	}
}

// Document recomputes control points for every path in doc.
func Document(doc *warppath.Document) {
	for _, p := range doc.Paths {
		Path(p)
	}
}
