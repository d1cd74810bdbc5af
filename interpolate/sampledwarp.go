// Package interpolate walks a warppath.Path's segments and emits a
// dense, evenly-paced sequence of warp samples along each one — the
// input the stamp compositor stamps into a displacement map (spec
// §4.4, §5).
//
// Grounded on the original implementation's interpolate_paths and
// mix_warps.
package interpolate

import "github.com/inkwarp/liquify/warppath"

// SampledWarp is a warp descriptor evaluated at one point along a
// path segment. It carries the same fields as warppath.WarpDescriptor
// because a sample and a user-placed node warp are stamped by exactly
// the same code (spec §5's SampledWarp).
type SampledWarp = warppath.WarpDescriptor
