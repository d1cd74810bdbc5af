// Package geom provides the geometry primitives used by the liquify
// warp engine: 2-D vectors, cubic Beziers, arc-length parameterization
// and nearest-point search.
//
// The reference implementation this engine is modeled on represents a
// 2-D point as a native complex number. Go has no first-class complex
// type with the needed arithmetic ergonomics for this, so points are
// represented as Vec2 and the handful of complex operations the
// original relies on (rotation by e^{i*theta}, polar decomposition)
// are inlined with math.Sincos/math.Hypot/math.Atan2.
package geom

import "math"

// Vec2 is a 2-D point or vector in the raw reference frame.
type Vec2 struct {
	X, Y float64
}

// Pt constructs a Vec2.
func Pt(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns p+q.
func (p Vec2) Add(q Vec2) Vec2 {
	return Vec2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Vec2) Mul(s float64) Vec2 {
	return Vec2{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Vec2) Dot(q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns |p|.
func (p Vec2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns |p-q|.
func (p Vec2) Distance(q Vec2) float64 {
	return p.Sub(q).Length()
}

// Arg returns the polar angle of p (atan2(Y, X)).
func (p Vec2) Arg() float64 {
	return math.Atan2(p.Y, p.X)
}

// Lerp returns the linear blend of p and q at parameter t (mix, in the
// terminology of the original implementation: p at t=0, q at t=1).
func (p Vec2) Lerp(q Vec2, t float64) Vec2 {
	return Vec2{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// FromPolar builds a vector from magnitude r and angle phi (the
// Go equivalent of r*cexp(phi*I)).
func FromPolar(r, phi float64) Vec2 {
	sin, cos := math.Sincos(phi)
	return Vec2{X: r * cos, Y: r * sin}
}

// Mix linearly interpolates two scalars; named to match the original
// implementation's `mix` helper (an alias for lerp).
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MixPolar interpolates two vectors by independently blending their
// magnitude and argument, matching the strength-vector interpolation
// rule used by the warp interpolator.
func MixPolar(p, q Vec2, t float64) Vec2 {
	r := Mix(p.Length(), q.Length(), t)
	phi := Mix(p.Arg(), q.Arg(), t)
	return FromPolar(r, phi)
}

// Rect is an axis-aligned rectangle with integer or float bounds,
// Min inclusive and Max exclusive-by-convention for pixel extents.
type Rect struct {
	Min, Max Vec2
}

// NewRect normalizes two corner points into a Rect with Min <= Max.
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		Min: Vec2{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Intersect returns the intersection of r and other. The result is
// Empty if the rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Vec2{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}
	if out.Width() < 0 || out.Height() < 0 {
		return Rect{}
	}
	return out
}

// IntRect is the integer-pixel counterpart of Rect, used for
// displacement-map and stamp extents (§4.5/§6 report extents as
// integer rectangles in raw-image coordinates).
type IntRect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle encloses no pixels.
func (r IntRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r IntRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Union returns the smallest integer rectangle containing both r and other.
func (r IntRect) Union(other IntRect) IntRect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.W, other.X+other.W)
	y1 := max(r.Y+r.H, other.Y+other.H)
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the intersection of r and other, or the zero
// IntRect (empty) if they do not overlap.
func (r IntRect) Intersect(other IntRect) IntRect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.W, other.X+other.W)
	y1 := min(r.Y+r.H, other.Y+other.H)
	if x1 <= x0 || y1 <= y0 {
		return IntRect{}
	}
	return IntRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and other share at least one pixel.
func (r IntRect) Overlaps(other IntRect) bool {
	return !r.Intersect(other).Empty()
}
