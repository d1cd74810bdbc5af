package geom

// DefaultNearestSamples is the default number of uniform samples used
// by NearestTOnCubic, matching the original implementation's brute
// force search (sufficient because it only runs on user clicks).
const DefaultNearestSamples = 100

// NearestTOnCubic returns the parameter t of the curve sample nearest
// to q, searching n uniform samples in [0,1]. Grounded on the
// original find_nearest_on_curve_t: a brute-force scan rather than a
// closed-form projection, since it is only invoked on hit-testing.
func NearestTOnCubic(c CubicBez, q Vec2, n int) float64 {
	if n < 2 {
		n = DefaultNearestSamples
	}
	best := 0.0
	bestDist := -1.0
	step := 1.0 / float64(n-1)
	b := c.toBasis()
	t := 0.0
	for i := 0; i < n; i++ {
		p := b.eval(t)
		d := p.Distance(q)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = t
		}
		t += step
	}
	return best
}

// NearestTOnLine returns the parameter t (unclamped) of the point on
// the infinite line through p0,p1 closest to q, via scalar
// projection. Grounded on the original find_nearest_on_line_t.
func NearestTOnLine(p0, p1, q Vec2) float64 {
	d := p1.Sub(p0)
	denom := d.Dot(d)
	if denom == 0 {
		return 0
	}
	return q.Sub(p0).Dot(d) / denom
}
