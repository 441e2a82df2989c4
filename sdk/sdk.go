package sdk

import (
	"context"
	"sync/atomic"
	"time"
)

// -----------------------------------------------------------------------------
// Clock
// -----------------------------------------------------------------------------

// Clock is the timestamp oracle, unix seconds.
type Clock interface {
	Now() int64
}

// MonotonicClock reads wall time but never hands out a value smaller than one it already returned.
type MonotonicClock struct {
	last atomic.Int64
}

// NewMonotonicClock is the production clock.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns max(wall time, last returned value).
func (c *MonotonicClock) Now() int64 {
	now := time.Now().Unix()
	for {
		last := c.last.Load()
		if now <= last {
			return last
		}
		if c.last.CompareAndSwap(last, now) {
			return now
		}
	}
}

// -----------------------------------------------------------------------------
// Privileged authority
// -----------------------------------------------------------------------------

// Authority answers "is this caller the deployment's privileged authority".
// The admin bootstrap asks it exactly once.
type Authority interface {
	IsAuthority(ctx context.Context, caller Address) (bool, error)
}

// StaticAuthority trusts a single configured address.
type StaticAuthority struct {
	Address Address
}

// IsAuthority compares the caller against the configured address.
// Example payload: sdk.StaticAuthority{Address: "root"}.IsAuthority(ctx, "root")
func (s StaticAuthority) IsAuthority(_ context.Context, caller Address) (bool, error) {
	return s.Address != "" && caller == s.Address, nil
}

// AuthorityFunc adapts a plain function, handy in tests.
type AuthorityFunc func(ctx context.Context, caller Address) (bool, error)

func (f AuthorityFunc) IsAuthority(ctx context.Context, caller Address) (bool, error) {
	return f(ctx, caller)
}
