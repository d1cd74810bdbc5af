// Package stamp renders each sampled warp into a round vector-field
// stamp and composites all of them into a single displacement map
// (spec §4.5, §4.6, §5).
//
// Grounded on the original implementation's build_lookup_table,
// build_round_stamp and add_to_global_distortion_map.
package stamp

import "github.com/inkwarp/liquify/geom"

// BuildLookupTable computes the hardness-curve lookup table used to
// taper a stamp's strength from full at the center to zero at
// distance. The curve is a cubic bezier from (0,1) to (1,0), with
// control1/control2 as its tangent x-coordinates (spec §3's
// control1/control2 hardness handles), reparameterized by x so that
// table[i] holds the warp magnitude multiplier at distance i from the
// stamp center.
//
// The returned table has distance+1 entries; table[0] == 1 and
// table[distance] == 0.
func BuildLookupTable(distance int, control1, control2 float64) []float64 {
	bez := geom.NewCubicBez(geom.Pt(0, 1), geom.Pt(control1, 1), geom.Pt(control2, 0), geom.Pt(1, 0))
	samples := make([]geom.Vec2, distance+1)
	bez.Sample(samples)

	table := make([]float64, distance+1)
	table[0] = 1.0

	step := 1.0 / float64(distance)
	x := 0.0
	idx := 1
	for i := 1; i < distance; i++ {
		x += step
		for samples[idx].X < x {
			idx++
		}
		dx1 := samples[idx].X - samples[idx-1].X
		dx2 := x - samples[idx-1].X
		table[i] = samples[idx-1].Y + (dx2/dx1)*(samples[idx].Y-samples[idx-1].Y)
	}
	table[distance] = 0.0
	return table
}
