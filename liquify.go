package liquify

import (
	"errors"

	"github.com/inkwarp/liquify/internal/parallel"
	"github.com/inkwarp/liquify/interpolate"
	"github.com/inkwarp/liquify/resample"
	"github.com/inkwarp/liquify/smooth"
	"github.com/inkwarp/liquify/stamp"
	"github.com/inkwarp/liquify/warppath"
)

// ErrCancelled is returned by BuildGlobalDistortionMap or
// ApplyGlobalDistortionMap when cancel was observed set; the caller
// must treat any returned map or image contents as discarded
// (spec §7).
var ErrCancelled = errors.New("liquify: operation cancelled")

// BuildGlobalDistortionMap smooths doc's paths, interpolates each
// into a dense sequence of sampled warps, and composites every
// sample's stamp field into a single DisplacementMap. doc is mutated
// in place (its AutoSmooth control points are refreshed) — callers on
// a shared Document must pass a Clone (spec §5).
//
// pool may be nil to run single-threaded; cancel may be nil to
// disable cooperative cancellation.
func BuildGlobalDistortionMap(doc *warppath.Document, pool *parallel.WorkerPool, cancel *Cancel) (*stamp.DisplacementMap, stamp.BuildStats, error) {
	log := Logger()
	log.Info("build global distortion map starting", "paths", len(doc.Paths))

	if cancel != nil && cancel.IsSet() {
		return nil, stamp.BuildStats{}, ErrCancelled
	}

	smooth.Document(doc)
	samples := interpolate.Document(doc)

	compositor := stamp.NewCompositor(pool)
	compositor.Cancelled = cancel.check()
	compositor.Logger = log

	m, stats, err := compositor.Build(samples)
	if err != nil {
		log.Info("build global distortion map failed", "err", err)
		return nil, stats, err
	}
	if cancel != nil && cancel.IsSet() {
		return nil, stats, ErrCancelled
	}
	log.Info("build global distortion map done", "samples", len(samples), "skipped_degenerate", stats.SkippedDegenerate)
	return m, stats, nil
}

// ApplyGlobalDistortionMap resamples src into dst through m using the
// given reconstruction kernel, leaving every pixel of dst outside m's
// extent (and every pixel inside it with a zero displacement)
// untouched (spec §4.6).
//
// pool may be nil to run single-threaded; cancel may be nil to
// disable cooperative cancellation.
func ApplyGlobalDistortionMap(dst, src *resample.Image, m *stamp.DisplacementMap, kernel resample.Kernel, pool *parallel.WorkerPool, cancel *Cancel) error {
	log := Logger()
	log.Info("apply global distortion map starting", "extent", m.Extent)

	if cancel != nil && cancel.IsSet() {
		return ErrCancelled
	}

	r := resample.NewResampler(pool, kernel)
	r.Cancelled = cancel.check()
	r.Logger = log
	r.Apply(dst, src, m)

	if cancel != nil && cancel.IsSet() {
		return ErrCancelled
	}
	log.Info("apply global distortion map done")
	return nil
}
