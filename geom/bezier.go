package geom

// CubicBez is a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1/P2 are control points, P3 is the end point.
//
// Grounded on the teacher's curve.go CubicBez, generalized with the
// polynomial-basis sampling used by the original liquify engine's
// interpolate_cubic_bezier (Bernstein-to-power-basis conversion so
// each sample costs a fixed number of multiply-adds rather than
// recomputing binomial weights).
type CubicBez struct {
	P0, P1, P2, P3 Vec2
}

// NewCubicBez constructs a cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Vec2) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// basis holds the power-basis coefficients A*t^3 + B*t^2 + C*t + D
// derived once from the Bernstein control points.
type basis struct {
	A, B, C, D Vec2
}

func (c CubicBez) toBasis() basis {
	return basis{
		A: c.P3.Sub(c.P2.Mul(3)).Add(c.P1.Mul(3)).Sub(c.P0),
		B: c.P2.Mul(3).Sub(c.P1.Mul(6)).Add(c.P0.Mul(3)),
		C: c.P1.Mul(3).Sub(c.P0.Mul(3)),
		D: c.P0,
	}
}

func (b basis) eval(t float64) Vec2 {
	return b.A.Mul(t).Add(b.B).Mul(t).Add(b.C).Mul(t).Add(b.D)
}

// Eval evaluates the curve at parameter t in [0,1].
func (c CubicBez) Eval(t float64) Vec2 {
	return c.toBasis().eval(t)
}

// Sample fills buffer with n points along the curve, buffer[0] = P0
// and buffer[n-1] = P3, spaced evenly in the parameter t. n must be
// at least 2. This mirrors interpolate_cubic_bezier: the power-basis
// conversion happens once, then each interior sample is one Horner
// evaluation.
func (c CubicBez) Sample(buffer []Vec2) {
	n := len(buffer)
	if n == 0 {
		return
	}
	buffer[0] = c.P0
	if n == 1 {
		return
	}
	b := c.toBasis()
	step := 1.0 / float64(n-1)
	t := step
	for i := 1; i < n-1; i++ {
		buffer[i] = b.eval(t)
		t += step
	}
	buffer[n-1] = c.P3
}

// Split performs De Casteljau subdivision of the curve at parameter t,
// returning the left and right sub-curves.
func (c CubicBez) Split(t float64) (left, right CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// ArcLength returns the polyline approximation of arc length of
// samples, i.e. the sum of consecutive segment lengths.
func ArcLength(samples []Vec2) float64 {
	length := 0.0
	for i := 1; i < len(samples); i++ {
		length += samples[i-1].Distance(samples[i])
	}
	return length
}

// ResumeHint is an opaque cursor for monotonically increasing calls
// to PointAtArcLength, avoiding an O(n) restart per call.
type ResumeHint struct {
	index  int
	length float64
}

// PointAtArcLength walks the polyline samples from the optional
// resume hint (pass nil or a zero ResumeHint to start from the
// beginning) and returns the
// linearly interpolated point at cumulative arc length s. It also
// returns the updated hint for the next monotonic call.
//
// If s exceeds the total arc length, the last sample is returned.
func PointAtArcLength(samples []Vec2, s float64, hint *ResumeHint) (Vec2, ResumeHint) {
	length := 0.0
	i := 1
	if hint != nil && hint.index > 0 {
		length = hint.length
		i = hint.index
	}

	for ; i < len(samples); i++ {
		prevLength := length
		length += samples[i-1].Distance(samples[i])
		if length >= s {
			var t float64
			if length > prevLength {
				t = (s - prevLength) / (length - prevLength)
			}
			return samples[i-1].Lerp(samples[i], t), ResumeHint{index: i, length: prevLength}
		}
	}

	return samples[len(samples)-1], ResumeHint{index: len(samples), length: length}
}
