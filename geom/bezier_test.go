package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwarp/liquify/geom"
)

func TestCubicBezEvalEndpoints(t *testing.T) {
	c := geom.NewCubicBez(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(3, 0))
	assert.InDelta(t, 0, c.Eval(0).X, 1e-9)
	assert.InDelta(t, 0, c.Eval(0).Y, 1e-9)
	assert.InDelta(t, 3, c.Eval(1).X, 1e-9)
	assert.InDelta(t, 0, c.Eval(1).Y, 1e-9)
}

func TestCubicBezSampleMatchesEval(t *testing.T) {
	c := geom.NewCubicBez(geom.Pt(0, 0), geom.Pt(10, 40), geom.Pt(40, 40), geom.Pt(50, 0))
	buf := make([]geom.Vec2, 5)
	c.Sample(buf)

	require.Len(t, buf, 5)
	assert.Equal(t, c.P0, buf[0])
	assert.Equal(t, c.P3, buf[4])

	// interior samples should agree with direct evaluation at evenly
	// spaced parameter values
	want := c.Eval(0.5)
	assert.InDelta(t, want.X, buf[2].X, 1e-9)
	assert.InDelta(t, want.Y, buf[2].Y, 1e-9)
}

// S6 — Casteljau insertion preserves curve: splitting at t=0.3 and
// resampling both halves at a combined 200 points must reproduce the
// original curve's 200-point sampling within 1e-6 (Frechet distance,
// approximated here as the max pointwise distance along matching
// parameterizations since both halves share the same total arc).
func TestSplitPreservesCurve(t *testing.T) {
	c := geom.NewCubicBez(geom.Pt(0, 0), geom.Pt(30, 90), geom.Pt(70, -90), geom.Pt(100, 0))
	left, right := c.Split(0.3)

	const n = 100
	leftBuf := make([]geom.Vec2, n)
	rightBuf := make([]geom.Vec2, n)
	left.Sample(leftBuf)
	right.Sample(rightBuf)

	full := make([]geom.Vec2, 2*n)
	full[0] = c.P0
	for i := 1; i < n; i++ {
		full[i] = c.Eval(0.3 * float64(i) / float64(n-1))
	}
	for i := 0; i < n; i++ {
		full[n+i] = c.Eval(0.3 + 0.7*float64(i)/float64(n-1))
	}

	joined := append(append([]geom.Vec2{}, leftBuf...), rightBuf...)
	var maxDist float64
	for i := range joined {
		d := joined[i].Distance(full[i])
		if d > maxDist {
			maxDist = d
		}
	}
	assert.Less(t, maxDist, 1e-6)
}

func TestArcLength(t *testing.T) {
	samples := []geom.Vec2{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(3, 8)}
	assert.InDelta(t, 9.0, geom.ArcLength(samples), 1e-9)
}

func TestPointAtArcLengthMonotonicResume(t *testing.T) {
	samples := []geom.Vec2{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0)}

	p1, hint1 := geom.PointAtArcLength(samples, 5, nil)
	assert.InDelta(t, 5, p1.X, 1e-9)

	p2, _ := geom.PointAtArcLength(samples, 15, &hint1)
	assert.InDelta(t, 15, p2.X, 1e-9)
}

func TestPointAtArcLengthBeyondEnd(t *testing.T) {
	samples := []geom.Vec2{geom.Pt(0, 0), geom.Pt(10, 0)}
	p, _ := geom.PointAtArcLength(samples, 1000, nil)
	assert.Equal(t, geom.Pt(10, 0), p)
}

func TestNearestTOnLine(t *testing.T) {
	p0, p1 := geom.Pt(0, 0), geom.Pt(10, 0)
	tVal := geom.NearestTOnLine(p0, p1, geom.Pt(4, 5))
	assert.InDelta(t, 0.4, tVal, 1e-9)
}

func TestNearestTOnCubic(t *testing.T) {
	c := geom.NewCubicBez(geom.Pt(0, 0), geom.Pt(0, 10), geom.Pt(10, 10), geom.Pt(10, 0))
	tVal := geom.NearestTOnCubic(c, c.Eval(0.42), 0)
	got := c.Eval(tVal)
	want := c.Eval(0.42)
	assert.Less(t, got.Distance(want), 0.02)
}

func TestMixPolar(t *testing.T) {
	a := geom.Pt(1, 0)
	b := geom.Pt(0, 1)
	mid := geom.MixPolar(a, b, 0.5)
	assert.InDelta(t, 1.0, mid.Length(), 1e-9)
	assert.InDelta(t, math.Pi/4, mid.Arg(), 1e-9)
}
