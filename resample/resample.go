package resample

import (
	"log/slog"
	"math"

	"github.com/inkwarp/liquify/internal/parallel"
	"github.com/inkwarp/liquify/stamp"
)

// Resampler applies a stamp.DisplacementMap to a source Image,
// producing a destination Image, following the original
// implementation's apply_global_distortion_map: only pixels with a
// non-zero displacement are touched, everything else is left exactly
// as the caller pre-filled dst (spec §4.6, §10's "outside map extent"
// row in the disposition table).
type Resampler struct {
	Pool   *parallel.WorkerPool
	Kernel Kernel

	// Cancelled, if set, is polled once per row before sampling it; a
	// true result leaves that row (and all rows after it, since rows
	// run independently rather than in guaranteed order) as dst
	// already had it, matching the cooperative cancellation contract
	// (spec §5, §7).
	Cancelled func() bool

	// Logger, if set, receives a Debug record per resampled row.
	// Callers that want this module's root-level logger propagated
	// here set it to liquify.Logger(); nil disables logging.
	Logger *slog.Logger

	table *kernelTable
}

// NewResampler returns a Resampler using kernel for reconstruction.
// pool may be nil, in which case Apply runs single-threaded.
func NewResampler(pool *parallel.WorkerPool, kernel Kernel) *Resampler {
	return &Resampler{Pool: pool, Kernel: kernel, table: newKernelTable(kernel)}
}

// Apply samples src through the backward displacement vectors in m
// and writes the result into dst, at the pixels where m and dst
// overlap. dst must already hold whatever content the caller wants
// untouched pixels to show.
func (r *Resampler) Apply(dst, src *Image, m *stamp.DisplacementMap) {
	if r.table == nil {
		r.table = newKernelTable(r.Kernel)
	}

	extent := m.Extent
	rows := make([]func(), 0, extent.H)
	for row := 0; row < extent.H; row++ {
		y := extent.Y + row
		if y < 0 || y >= dst.Height() {
			continue
		}
		y := y
		rows = append(rows, func() {
			if r.Cancelled != nil && r.Cancelled() {
				return
			}
			if r.Logger != nil {
				r.Logger.Debug("resampled row", "y", y)
			}
			r.applyRow(dst, src, m, y)
		})
	}
	r.run(rows)
}

func (r *Resampler) applyRow(dst, src *Image, m *stamp.DisplacementMap, y int) {
	for x := m.Extent.X; x < m.Extent.X+m.Extent.W; x++ {
		if x < 0 || x >= dst.Width() {
			continue
		}
		d := m.At(x, y)
		if d.X == 0 && d.Y == 0 {
			continue
		}

		sx := float64(x) + d.X
		sy := float64(y) + d.Y
		c := r.sample(src, sx, sy)
		dst.SetRGBA(x, y, c[0], c[1], c[2], c[3])
	}
}

// sample reconstructs the four RGBA channels at a non-integer source
// coordinate by convolving the tabulated kernel over the surrounding
// radius*2 pixel window.
func (r *Resampler) sample(src *Image, sx, sy float64) [4]uint8 {
	radius := r.table.radius
	ix := int(math.Floor(sx))
	iy := int(math.Floor(sy))

	var acc [4]float64
	var wsum float64
	for dy := -radius + 1; dy <= radius; dy++ {
		wy := r.table.at(float64(iy+dy) - sy)
		if wy == 0 {
			continue
		}
		for dx := -radius + 1; dx <= radius; dx++ {
			wx := r.table.at(float64(ix+dx) - sx)
			if wx == 0 {
				continue
			}
			w := wx * wy
			pr, pg, pb, pa := src.GetRGBA(ix+dx, iy+dy)
			acc[0] += w * float64(pr)
			acc[1] += w * float64(pg)
			acc[2] += w * float64(pb)
			acc[3] += w * float64(pa)
			wsum += w
		}
	}

	var out [4]uint8
	if wsum == 0 {
		return out
	}
	for i := range acc {
		v := acc[i] / wsum
		out[i] = clampByte(v)
	}
	return out
}

func (r *Resampler) run(work []func()) {
	if r.Pool != nil {
		r.Pool.ExecuteAll(work)
		return
	}
	for _, w := range work {
		w()
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
