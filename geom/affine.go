package geom

// Affine is a 2-D affine transform, grounded on the teacher's
// matrix.go Matrix: a concrete, reversible transform a host can use
// for its coordinate-system conversions. Its Forward/Backward work on
// a single point, so it does not itself satisfy edit.Transformer;
// ForwardAll/BackwardAll apply it to a slice in place.
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// TranslateAffine returns a pure translation.
func TranslateAffine(dx, dy float64) Affine {
	return Affine{A: 1, E: 1, C: dx, F: dy}
}

// ScaleAffine returns a pure scale about the origin.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Forward applies the transform to p.
func (m Affine) Forward(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Backward applies the inverse transform to p. Panics if the matrix
// is singular; callers are expected to only construct invertible
// transforms (scale 0 is a programmer error, not a runtime one).
func (m Affine) Backward(p Vec2) Vec2 {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		panic("geom: Affine is singular, cannot invert")
	}
	// p' = M^-1 * (p - translation)
	x := p.X - m.C
	y := p.Y - m.F
	invDet := 1 / det
	return Vec2{
		X: (m.E*x - m.B*y) * invDet,
		Y: (m.A*y - m.D*x) * invDet,
	}
}

// Mul composes transforms so that (m.Mul(n)).Forward(p) == m.Forward(n.Forward(p)).
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// ForwardAll applies Forward to every point in place.
func (m Affine) ForwardAll(points []Vec2) {
	for i, p := range points {
		points[i] = m.Forward(p)
	}
}

// BackwardAll applies Backward to every point in place.
func (m Affine) BackwardAll(points []Vec2) {
	for i, p := range points {
		points[i] = m.Backward(p)
	}
}
