package stamp

import (
	"math"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

// LookupOversample is the number of lookup-table entries computed per
// unit of pixel distance, matching the original implementation's
// LOOKUP_OVERSAMPLE.
const LookupOversample = 10

// Field is a round vector field of warp displacements around a warp's
// center, in the warp's own local coordinates (the "hot pixel" — the
// center of the field — sits at local (0,0)).
type Field struct {
	// Extent is the field's bounding box in local coordinates:
	// X == Y == -radius, W == H == 2*radius+1.
	Extent geom.IntRect

	// Vectors is the row-major field data, len(Vectors) ==
	// Extent.W*Extent.H.
	Vectors []geom.Vec2
}

func (f Field) at(x, y int) geom.Vec2 {
	return f.Vectors[(y-f.Extent.Y)*f.Extent.W+(x-f.Extent.X)]
}

func (f Field) set(x, y int, v geom.Vec2) {
	f.Vectors[(y-f.Extent.Y)*f.Extent.W+(x-f.Extent.X)] = v
}

// BuildRoundStamp renders the vector field for one sampled warp.
//
// In a Linear warp the center gets a displacement of the warp's full
// strength vector, tapering to zero at the circumference. In a RadialGrow or
// RadialShrink warp, both the center and the circumference get no
// displacement; the field peaks partway between them and pushes
// (RadialGrow) or pulls (RadialShrink) radially.
//
// The circle is computed one octant at a time (y <= x <= radius) and
// mirrored into the other seven, since hypot is the expensive part of
// this loop.
func BuildRoundStamp(warp warppath.WarpDescriptor) (Field, error) {
	iradius := int(math.Round(warp.RadiusMagnitude()))
	if iradius <= 0 {
		return Field{}, ErrDegenerateWarp
	}

	width := 2*iradius + 1
	vectors := make([]geom.Vec2, width*width)
	field := Field{
		Extent:  geom.IntRect{X: -iradius, Y: -iradius, W: width, H: width},
		Vectors: vectors,
	}

	// For the radial warps 0.5 is factored in so the warp starts to
	// degenerate when the strength arrow crosses the warp radius.
	strength := warp.StrengthVector()
	absStrength := 0.5 * strength.Length()

	tableSize := iradius * LookupOversample
	lookup := BuildLookupTable(tableSize, warp.Control1, warp.Control2)

	for y := 0; y <= iradius; y++ {
		for x := y; x <= iradius; x++ {
			dist := math.Hypot(float64(x), float64(y))
			idist := int(math.Round(dist * LookupOversample))
			if idist >= tableSize {
				break
			}

			absLookup := absStrength * lookup[idist] / float64(iradius)

			switch warp.Type {
			case warppath.RadialGrow:
				setOctants(field, x, y, 1, absLookup)
			case warppath.RadialShrink:
				setOctants(field, x, y, -1, absLookup)
			default:
				v := strength.Mul(lookup[idist])
				setOctantsUniform(field, x, y, v)
			}
		}
	}

	return field, nil
}

// setOctants fills the eight octant-mirrored positions around the
// field center for a radial warp, sign flipping for shrink vs. grow.
func setOctants(field Field, x, y int, sign, absLookup float64) {
	fx, fy := float64(x), float64(y)
	s := sign * absLookup
	field.set(x, -y, geom.Pt(s*fx, -s*fy))
	field.set(y, -x, geom.Pt(s*fy, -s*fx))
	field.set(-y, -x, geom.Pt(-s*fy, -s*fx))
	field.set(-x, -y, geom.Pt(-s*fx, -s*fy))
	field.set(-x, y, geom.Pt(-s*fx, s*fy))
	field.set(-y, x, geom.Pt(-s*fy, s*fx))
	field.set(y, x, geom.Pt(s*fy, s*fx))
	field.set(x, y, geom.Pt(s*fx, s*fy))
}

// setOctantsUniform fills the eight octant-mirrored positions with
// the same vector, used by Linear warps (spec's note that a linear
// stamp's vectors are rotated into the path direction by the caller,
// not by the stamp itself).
func setOctantsUniform(field Field, x, y int, v geom.Vec2) {
	field.set(x, -y, v)
	field.set(y, -x, v)
	field.set(-y, -x, v)
	field.set(-x, -y, v)
	field.set(-x, y, v)
	field.set(-y, x, v)
	field.set(y, x, v)
	field.set(x, y, v)
}
