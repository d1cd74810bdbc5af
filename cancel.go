package liquify

import "sync/atomic"

// Cancel is a cooperative cancellation flag a host sets from another
// goroutine while BuildGlobalDistortionMap or ApplyGlobalDistortionMap
// is running. It is polled between stamps and between resampler
// row-blocks (spec §5); there is no forced-timeout mechanism, the
// host is expected to enforce its own deadlines externally.
type Cancel struct {
	flag atomic.Bool
}

// Set marks the flag as cancelled. Safe to call from any goroutine.
func (c *Cancel) Set() {
	c.flag.Store(true)
}

// IsSet reports whether Set has been called.
func (c *Cancel) IsSet() bool {
	return c.flag.Load()
}

func (c *Cancel) check() func() bool {
	if c == nil {
		return nil
	}
	return c.IsSet
}
