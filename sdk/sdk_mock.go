package sdk

import "sync/atomic"

// ManualClock is a Clock for tests and replays; time only moves when told to.
type ManualClock struct {
	now atomic.Int64
}

// NewManualClock starts the clock at the given unix timestamp.
// Example payload: sdk.NewManualClock(1_756_857_600)
func NewManualClock(start int64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(start)
	return c
}

func (c *ManualClock) Now() int64 { return c.now.Load() }

// Advance moves the clock forward; negative values are ignored to stay monotonic.
func (c *ManualClock) Advance(seconds int64) {
	if seconds <= 0 {
		return
	}
	c.now.Add(seconds)
}

// Set jumps to ts if it is not in the past.
func (c *ManualClock) Set(ts int64) {
	for {
		cur := c.now.Load()
		if ts <= cur {
			return
		}
		if c.now.CompareAndSwap(cur, ts) {
			return
		}
	}
}
