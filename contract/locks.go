package contract

import (
	"context"
	"sort"

	"github.com/OneOfOne/xxhash"
)

// lockStripes bounds the lock table; unrelated keys may share a stripe, which only costs parallelism.
const lockStripes = 256

// lockTable serializes operations per storage key. Stripes are channels so
// waiting respects context cancellation.
type lockTable struct {
	stripes [lockStripes]chan struct{}
}

func newLockTable() *lockTable {
	t := &lockTable{}
	for i := range t.stripes {
		t.stripes[i] = make(chan struct{}, 1)
	}
	return t
}

func stripeOf(key string) int {
	return int(xxhash.ChecksumString64(key) % lockStripes)
}

// lock takes every stripe covering keys in ascending order, so two
// operations with overlapping key sets can never deadlock.
func (t *lockTable) lock(ctx context.Context, keys ...string) (func(), error) {
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		idx = append(idx, stripeOf(k))
	}
	sort.Ints(idx)
	uniq := idx[:0]
	for _, s := range idx {
		if len(uniq) == 0 || uniq[len(uniq)-1] != s {
			uniq = append(uniq, s)
		}
	}

	held := make([]int, 0, len(uniq))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			<-t.stripes[held[i]]
		}
	}
	for _, s := range uniq {
		select {
		case t.stripes[s] <- struct{}{}:
			held = append(held, s)
		case <-ctx.Done():
			release()
			return nil, ctx.Err()
		}
	}
	return release, nil
}
