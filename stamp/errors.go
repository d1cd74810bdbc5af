package stamp

import "errors"

// ErrDegenerateWarp is returned internally when a warp's radius
// rounds to zero or less; the compositor logs and skips such samples
// rather than surfacing the error to the caller (spec §7).
var ErrDegenerateWarp = errors.New("stamp: degenerate warp (radius rounds to zero)")

// ErrMapTooLarge is returned when the union of all stamp extents
// would require allocating a displacement map beyond
// Compositor.MaxMapPixels.
// This is surfaced to the host as fatal (spec §7, §10).
var ErrMapTooLarge = errors.New("stamp: displacement map extent too large to allocate")
