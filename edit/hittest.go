package edit

import (
	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// HandleKind identifies which draggable point of a node a hit landed
// on (spec §4.7).
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleCenter
	HandleStrength
	HandleRadius
	HandleCtrl1
	HandleCtrl2
)

// NodeHit is the closest node handle to a hit-test point.
type NodeHit struct {
	Path   *warppath.Path
	Node   *warppath.Node
	Handle HandleKind
}

// HitTestNodes returns the closest handle to pos across every path in
// doc whose distance is within tolerance. includeCtrlHandles is true
// for the node tool's press, so a CurveTo's control points can be
// dragged, and false for the other tools and for the button-3 and
// ctrl+click lookups, where only Center/Strength/Radius are live.
func HitTestNodes(doc *warppath.Document, pos geom.Vec2, tolerance float64, includeCtrlHandles bool) (NodeHit, bool) {
	best := NodeHit{}
	bestDist := tolerance
	found := false

	consider := func(p *warppath.Path, n *warppath.Node, handle HandleKind, at geom.Vec2) {
		d := at.Distance(pos)
		if d <= bestDist {
			bestDist = d
			best = NodeHit{Path: p, Node: n, Handle: handle}
			found = true
		}
	}

	for _, p := range doc.Paths {
		for _, n := range p.Nodes() {
			consider(p, n, HandleCenter, n.Point())
			consider(p, n, HandleStrength, n.Warp.Strength)
			consider(p, n, HandleRadius, n.Warp.Radius)
			if includeCtrlHandles && n.Kind == warppath.CurveTo {
				consider(p, n, HandleCtrl1, n.Ctrl1)
				consider(p, n, HandleCtrl2, n.Ctrl2)
			}
		}
	}
	return best, found
}

// SegmentHit is the closest point on a path's body (the line or curve
// between two adjacent nodes) to a hit-test point.
type SegmentHit struct {
	Path *warppath.Path
	Prev *warppath.Node
	Cur  *warppath.Node
	T    float64
	Dist float64
}

// HitTestSegments returns the closest path segment to pos within
// tolerance, used by the ctrl+click insert/convert operations and by
// button-3-on-segment delete-path (spec §4.7).
func HitTestSegments(doc *warppath.Document, pos geom.Vec2, tolerance float64) (SegmentHit, bool) {
	best := SegmentHit{}
	bestDist := tolerance
	found := false

	for _, p := range doc.Paths {
		for _, pair := range p.IteratePairs() {
			if pair.Prev == nil {
				continue
			}

			var t float64
			var closest geom.Vec2
			if pair.Current.Kind == warppath.CurveTo {
				c := geom.NewCubicBez(pair.Prev.Point(), pair.Current.Ctrl1, pair.Current.Ctrl2, pair.Current.Point())
				t = geom.NearestTOnCubic(c, pos, geom.DefaultNearestSamples)
				closest = c.Eval(t)
			} else {
				t = geom.NearestTOnLine(pair.Prev.Point(), pair.Current.Point(), pos)
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
				closest = pair.Prev.Point().Lerp(pair.Current.Point(), t)
			}

			d := closest.Distance(pos)
			if d <= bestDist {
				bestDist = d
				best = SegmentHit{Path: p, Prev: pair.Prev, Cur: pair.Current, T: t, Dist: d}
				found = true
			}
		}
	}
	return best, found
}
