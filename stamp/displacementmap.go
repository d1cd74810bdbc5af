package stamp

import "github.com/inkwarp/liquify/geom"

// DisplacementMap holds per-pixel backward displacement vectors: the
// offset, from a given output pixel, of the input pixel that should
// be sampled there (spec §5's DisplacementMap, §6's "negative of the
// forward warp" convention).
type DisplacementMap struct {
	Extent geom.IntRect
	Data   []geom.Vec2
}

// NewDisplacementMap allocates a zeroed map covering extent.
func NewDisplacementMap(extent geom.IntRect) *DisplacementMap {
	return &DisplacementMap{
		Extent: extent,
		Data:   make([]geom.Vec2, extent.W*extent.H),
	}
}

// At returns the displacement vector at raw-image coordinate (x, y).
// (x, y) must lie within m.Extent.
func (m *DisplacementMap) At(x, y int) geom.Vec2 {
	return m.Data[(y-m.Extent.Y)*m.Extent.W+(x-m.Extent.X)]
}

// addField accumulates one stamp field into the map at the raw-image
// position given by center (rounded to the nearest pixel), clipped to
// the overlap between the field's placed extent and the map's own
// extent. Accumulation is by subtraction — matching the original
// implementation's destrow[x] -= srcrow[x] — so the map ends up
// holding backward offsets (spec §5).
func (m *DisplacementMap) addField(center geom.Vec2, field Field) {
	placed := geom.IntRect{
		X: field.Extent.X + roundToInt(center.X),
		Y: field.Extent.Y + roundToInt(center.Y),
		W: field.Extent.W,
		H: field.Extent.H,
	}
	overlap := placed.Intersect(m.Extent)
	if overlap.Empty() {
		return
	}

	for y := overlap.Y; y < overlap.Y+overlap.H; y++ {
		destRow := m.Data[(y-m.Extent.Y)*m.Extent.W:]
		srcY := y - placed.Y + field.Extent.Y
		for x := overlap.X; x < overlap.X+overlap.W; x++ {
			srcX := x - placed.X + field.Extent.X
			destIdx := x - m.Extent.X
			destRow[destIdx] = destRow[destIdx].Sub(field.at(srcX, srcY))
		}
	}
}
