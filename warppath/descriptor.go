package warppath

import "github.com/inkwarp/liquify/geom"

// WarpDescriptor is the per-node warp definition of spec §3: an
// anchor point plus a strength vector and radius, both encoded as
// absolute points (strength - point gives magnitude+direction; radius
// - point gives magnitude), and the hardness-curve tangent
// x-coordinates.
type WarpDescriptor struct {
	Point    geom.Vec2
	Strength geom.Vec2
	Radius   geom.Vec2
	Control1 float64
	Control2 float64
	Type     WarpType
}

// NewWarpDescriptor builds a descriptor with the given anchor, its
// strength and radius handles placed strengthMag and radiusMag to the
// right (+X) of it, and both hardness controls at 0.5 (see
// config.DefaultStrength/DefaultRadius for the magnitudes the editor
// seeds new warps with).
func NewWarpDescriptor(point geom.Vec2, strengthMag, radiusMag float64, warpType WarpType) WarpDescriptor {
	return WarpDescriptor{
		Point:    point,
		Strength: point.Add(geom.Pt(strengthMag, 0)),
		Radius:   point.Add(geom.Pt(radiusMag, 0)),
		Control1: 0.5,
		Control2: 0.5,
		Type:     warpType,
	}
}

// StrengthVector returns strength - point: the magnitude+direction of
// the warp's displacement arrow.
func (w WarpDescriptor) StrengthVector() geom.Vec2 {
	return w.Strength.Sub(w.Point)
}

// RadiusMagnitude returns |radius - point|.
func (w WarpDescriptor) RadiusMagnitude() float64 {
	return w.Radius.Sub(w.Point).Length()
}

// Degenerate reports whether the descriptor's radius magnitude is
// below eps and must be skipped by the stamp compositor (spec §3 invariant,
// §7 "Degenerate warp").
func (w WarpDescriptor) Degenerate(eps float64) bool {
	return w.RadiusMagnitude() < eps
}

// ClampControls clamps Control1/Control2 to [0,1], the invariant
// required after any user edit (spec §3).
func (w WarpDescriptor) ClampControls() WarpDescriptor {
	w.Control1 = clamp01(w.Control1)
	w.Control2 = clamp01(w.Control2)
	return w
}

// Translate returns a copy of w with Point, Strength and Radius all
// shifted by delta, preserving the relative strength/radius offsets.
// This is the warp-level primitive behind Dragging(Center) (spec §4.7).
func (w WarpDescriptor) Translate(delta geom.Vec2) WarpDescriptor {
	w.Point = w.Point.Add(delta)
	w.Strength = w.Strength.Add(delta)
	w.Radius = w.Radius.Add(delta)
	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
