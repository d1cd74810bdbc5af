package stamp

import (
	"log/slog"
	"math"

	"github.com/inkwarp/liquify/geom"
	"github.com/inkwarp/liquify/internal/parallel"
	"github.com/inkwarp/liquify/warppath"
)

// defaultMaxMapPixels bounds the displacement map's allocation so a
// pathological set of widely spread stamps cannot exhaust memory; the
// caller surfaces ErrMapTooLarge as fatal (spec §7, §10).
const defaultMaxMapPixels = 64 << 20

// Compositor renders sampled warps into stamp fields and accumulates
// them into a single DisplacementMap. Field rendering for independent
// samples is distributed across Pool; Pool may be nil, in which case
// Build runs single-threaded.
type Compositor struct {
	Pool         *parallel.WorkerPool
	MaxMapPixels int

	// Cancelled, if set, is polled once per sample before rendering
	// its stamp field; a true result drops that stamp from the map,
	// matching the cooperative "checked between stamps" cancellation
	// contract (spec §5, §7).
	Cancelled func() bool

	// Logger, if set, receives a Debug record per rendered stamp and a
	// Warn record per skipped degenerate warp. Callers that want this
	// module's root-level logger propagated here set it to
	// liquify.Logger(); nil disables logging.
	Logger *slog.Logger
}

// NewCompositor returns a Compositor using pool for stamp-field
// rendering.
func NewCompositor(pool *parallel.WorkerPool) *Compositor {
	return &Compositor{Pool: pool, MaxMapPixels: defaultMaxMapPixels}
}

// BuildStats reports accounting from a Build call that does not
// belong in the DisplacementMap itself.
type BuildStats struct {
	// SkippedDegenerate counts samples whose rounded radius was zero
	// or less; these contribute nothing to the map (spec §7).
	SkippedDegenerate int
}

type placedField struct {
	center     geom.Vec2
	field      Field
	ok         bool
	degenerate bool
}

// Build renders every sample into a stamp field and composites the
// fields into a DisplacementMap sized to their combined extent. An
// empty samples slice (or one where every sample is degenerate)
// yields a zero-area map and no error, matching the edit state
// machine's "nothing placed yet" case (spec §7).
func (c *Compositor) Build(samples []warppath.WarpDescriptor) (*DisplacementMap, BuildStats, error) {
	var stats BuildStats
	if len(samples) == 0 {
		return NewDisplacementMap(geom.IntRect{}), stats, nil
	}

	fields := make([]placedField, len(samples))
	work := make([]func(), len(samples))
	for i := range samples {
		i := i
		s := samples[i]
		work[i] = func() {
			if c.Cancelled != nil && c.Cancelled() {
				return
			}
			f, err := BuildRoundStamp(s)
			if err != nil {
				if c.Logger != nil {
					c.Logger.Warn("skipped degenerate warp", "index", i, "err", err)
				}
				fields[i] = placedField{degenerate: true}
				return
			}
			if c.Logger != nil {
				c.Logger.Debug("rendered stamp", "index", i, "radius", s.Radius)
			}
			fields[i] = placedField{center: s.Point, field: f, ok: true}
		}
	}
	c.run(work)

	var extent geom.IntRect
	haveExtent := false
	for _, pf := range fields {
		if !pf.ok {
			if pf.degenerate {
				stats.SkippedDegenerate++
			}
			continue
		}
		placed := placedExtent(pf.center, pf.field)
		if !haveExtent {
			extent = placed
			haveExtent = true
		} else {
			extent = extent.Union(placed)
		}
	}

	if !haveExtent {
		return NewDisplacementMap(geom.IntRect{}), stats, nil
	}

	maxPixels := c.MaxMapPixels
	if maxPixels == 0 {
		maxPixels = defaultMaxMapPixels
	}
	if extent.W*extent.H > maxPixels {
		return nil, stats, ErrMapTooLarge
	}

	m := NewDisplacementMap(extent)
	for _, pf := range fields {
		if pf.ok {
			m.addField(pf.center, pf.field)
		}
	}
	return m, stats, nil
}

func (c *Compositor) run(work []func()) {
	if c.Pool != nil {
		c.Pool.ExecuteAll(work)
		return
	}
	for _, w := range work {
		w()
	}
}

func placedExtent(center geom.Vec2, field Field) geom.IntRect {
	return geom.IntRect{
		X: field.Extent.X + roundToInt(center.X),
		Y: field.Extent.Y + roundToInt(center.Y),
		W: field.Extent.W,
		H: field.Extent.H,
	}
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
