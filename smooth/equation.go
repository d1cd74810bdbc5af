// Package smooth fits a Catmull-Rom-like cubic bezier spline through
// a warppath.Path's anchor nodes, choosing per-segment boundary
// conditions from the node types surrounding it (spec §4.3).
//
// Grounded on the original implementation's smooth_path_linsys /
// smooth_paths_linsys, reusing its equation numbering and tridiagonal
// solve (see solver.go), generalized to geom.Vec2 in place of complex
// doubles.
package smooth

// equation is one of nine boundary-condition templates for a single
// path segment, chosen by the combination of "smooth" (curvature
// continuous), "straight" (second derivative zero) and "keep" (use
// the existing user-set control point) behavior at each end.
type equation int

const (
	eqStraightSmooth  equation = 1 // straight start, smooth end
	eqSmoothSmooth    equation = 2 // smooth start, smooth end
	eqSmoothStraight  equation = 3 // smooth start, straight end
	eqKeepSmooth      equation = 4 // keep start, smooth end
	eqKeepKeep        equation = 5 // keep start, keep end
	eqSmoothKeep      equation = 6 // smooth start, keep end
	eqKeepStraight    equation = 7 // keep start, straight end
	eqStraightStraight equation = 8 // straight start, straight end (a line)
	eqStraightKeep    equation = 9 // straight start, keep end
)

// segmentFlags are the five boolean conditions the decision tree
// below is built from.
type segmentFlags struct {
	autosmooth     bool
	nextAutosmooth bool
	firstseg       bool
	lastseg        bool
	lineseg        bool
}

// chooseEquation walks the same decision tree as the original
// implementation, in the same order, to pick the boundary-condition
// equation for one segment.
func chooseEquation(f segmentFlags) equation {
	switch {
	case f.lineseg:
		return eqKeepKeep
	case !f.autosmooth && !f.nextAutosmooth:
		return eqKeepKeep
	case f.firstseg && f.lastseg && !f.autosmooth && f.nextAutosmooth:
		return eqKeepStraight
	case f.firstseg && f.lastseg && f.autosmooth && f.nextAutosmooth:
		return eqStraightStraight
	case f.firstseg && f.lastseg && f.autosmooth && !f.nextAutosmooth:
		return eqStraightKeep
	case f.firstseg && f.autosmooth:
		return eqStraightSmooth
	case f.lastseg && f.autosmooth && f.nextAutosmooth:
		return eqSmoothStraight
	case f.lastseg && !f.autosmooth && f.nextAutosmooth:
		return eqKeepStraight
	case f.autosmooth && !f.nextAutosmooth:
		return eqSmoothKeep
	case !f.autosmooth && f.nextAutosmooth:
		return eqKeepSmooth
	default:
		return eqSmoothSmooth
	}
}
