package edit

import (
	"math"

	"github.com/akavel/polyclip-go"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// BoundingBoxes returns one axis-aligned rectangle per path in doc: the
// union, over every segment (and the lone head node of a one-node
// path), of that segment's endpoints expanded by the larger of its
// two nodes' radii. HitTestNodes and HitTestSegments do not consult
// these boxes; they walk every node of every path.
func BoundingBoxes(doc *warppath.Document) []geom.Rect {
	boxes := make([]geom.Rect, len(doc.Paths))
	for i, p := range doc.Paths {
		boxes[i] = pathBoundingBox(p)
	}
	return boxes
}

func pathBoundingBox(p *warppath.Path) geom.Rect {
	var envelope polyclip.Polygon
	for _, pair := range p.IteratePairs() {
		quad := segmentEnvelope(pair)
		if envelope == nil {
			envelope = polyclip.Polygon{quad}
			continue
		}
		envelope = envelope.Construct(polyclip.UNION, polyclip.Polygon{quad})
	}
	return polygonBounds(envelope)
}

func segmentEnvelope(pair warppath.Pair) polyclip.Contour {
	if pair.Prev == nil {
		return nodeEnvelope(pair.Current)
	}
	a, b := pair.Prev.Point(), pair.Current.Point()
	r := math.Max(pair.Prev.Warp.RadiusMagnitude(), pair.Current.Warp.RadiusMagnitude())
	minX, maxX := math.Min(a.X, b.X)-r, math.Max(a.X, b.X)+r
	minY, maxY := math.Min(a.Y, b.Y)-r, math.Max(a.Y, b.Y)+r
	return rectContour(minX, minY, maxX, maxY)
}

func nodeEnvelope(n *warppath.Node) polyclip.Contour {
	r := n.Warp.RadiusMagnitude()
	p := n.Point()
	return rectContour(p.X-r, p.Y-r, p.X+r, p.Y+r)
}

func rectContour(minX, minY, maxX, maxY float64) polyclip.Contour {
	return polyclip.Contour{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

func polygonBounds(poly polyclip.Polygon) geom.Rect {
	if len(poly) == 0 {
		return geom.Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, contour := range poly {
		for _, pt := range contour {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return geom.Rect{Min: geom.Pt(minX, minY), Max: geom.Pt(maxX, maxY)}
}
