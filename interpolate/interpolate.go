package interpolate

import (
	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/warppath"
)

const (
	// stampRelocation is the fraction of a sample's radius the
	// interpolator advances along the path before placing the next
	// stamp: smaller values produce denser, smoother coverage at
	// greater cost. Matches the original implementation's
	// STAMP_RELOCATION.
	stampRelocation = 0.1

	// interpolationPoints is the number of points a CurveTo segment's
	// bezier is pre-sampled at before arc-length walking, matching
	// the original implementation's INTERPOLATION_POINTS.
	interpolationPoints = 100
)

// mixWarps blends two node warps at parameter t, placing the result
// at pt. The control1/control2 hardness coordinates and the radius
// magnitude blend linearly; the strength vector blends in polar form
// so that rotating strength vectors sweep smoothly instead of cutting
// through the anchor.
func mixWarps(w1, w2 warppath.WarpDescriptor, pt geom.Vec2, t float64) warppath.WarpDescriptor {
	radius := geom.Mix(w1.RadiusMagnitude(), w2.RadiusMagnitude(), t)
	strengthOffset := geom.MixPolar(w1.StrengthVector(), w2.StrengthVector(), t)

	return warppath.WarpDescriptor{
		Point:    pt,
		Strength: pt.Add(strengthOffset),
		Radius:   pt.Add(geom.Pt(radius, 0)),
		Control1: geom.Mix(w1.Control1, w2.Control1, t),
		Control2: geom.Mix(w1.Control2, w2.Control2, t),
		Type:     w1.Type,
	}
}

// relocateStrength pulls a sample's strength vector closer to its own
// point by stampRelocation, matching the original implementation's
// jitter-reducing w->strength = cmix(w->point, w->strength,
// STAMP_RELOCATION) step applied to every emitted sample.
func relocateStrength(w warppath.WarpDescriptor) warppath.WarpDescriptor {
	w.Strength = w.Point.Lerp(w.Strength, stampRelocation)
	return w
}

// Path walks every segment of p and returns the ordered sequence of
// SampledWarp stamps along it. A lone MoveTo (a path with a single
// node) emits exactly its own warp; LineTo and CurveTo segments are
// walked at arc-length steps of stampRelocation * (the just-sampled
// radius); ClosePath segments emit no samples (the tridiagonal
// smoother already treats closed paths as open runs, and so does
// interpolation — see the design notes).
func Path(p *warppath.Path) []SampledWarp {
	var out []SampledWarp
	pairs := p.IteratePairs()

	for _, pair := range pairs {
		if pair.Prev == nil {
			if len(pairs) == 1 {
				out = append(out, pair.Current.Warp)
			}
			continue
		}

		switch pair.Current.Kind {
		case warppath.LineTo:
			out = append(out, sampleLine(pair.Prev, pair.Current)...)
		case warppath.CurveTo:
			out = append(out, sampleCurve(pair.Prev, pair.Current)...)
		case warppath.ClosePath:
			// No samples: matches the original implementation, which
			// has no case for the closing segment in interpolate_paths.
		}
	}
	return out
}

func sampleLine(prev, cur *warppath.Node) []SampledWarp {
	p1, p2 := prev.Point(), cur.Point()
	totalLength := p1.Distance(p2)
	if totalLength == 0 {
		return nil
	}

	var out []SampledWarp
	for arcLength := 0.0; arcLength < totalLength; {
		t := arcLength / totalLength
		pt := p1.Lerp(p2, t)
		w := mixWarps(prev.Warp, cur.Warp, pt, t)
		w = relocateStrength(w)
		out = append(out, w)
		arcLength += w.RadiusMagnitude() * stampRelocation
	}
	return out
}

func sampleCurve(prev, cur *warppath.Node) []SampledWarp {
	bez := geom.NewCubicBez(prev.Point(), cur.Ctrl1, cur.Ctrl2, cur.Point())
	buffer := make([]geom.Vec2, interpolationPoints)
	bez.Sample(buffer)

	totalLength := geom.ArcLength(buffer)
	if totalLength == 0 {
		return nil
	}

	var out []SampledWarp
	var hint geom.ResumeHint
	for arcLength := 0.0; arcLength < totalLength; {
		var pt geom.Vec2
		pt, hint = geom.PointAtArcLength(buffer, arcLength, &hint)
		t := arcLength / totalLength
		w := mixWarps(prev.Warp, cur.Warp, pt, t)
		w = relocateStrength(w)
		out = append(out, w)
		arcLength += w.RadiusMagnitude() * stampRelocation
	}
	return out
}

// Document concatenates Path's output over every path in doc, in
// document order, which is the order the stamp compositor composites
// in (spec §5).
func Document(doc *warppath.Document) []SampledWarp {
	var out []SampledWarp
	for _, p := range doc.Paths {
		out = append(out, Path(p)...)
	}
	return out
}
