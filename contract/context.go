package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"community_fund/sdk"
	"community_fund/state"
)

// txn is scoped to the currently executing operation. It pins caller and
// timestamp once so every check inside the operation sees the same snapshot,
// memoizes reads and stages writes and events until commit.
type txn struct {
	c      *Contract
	ctx    context.Context
	id     string
	caller sdk.Address
	now    int64

	reads    map[string]*string
	muts     []state.Mutation
	staged   map[string]int
	conflict error

	events []sdk.Event
}

func (c *Contract) begin(ctx context.Context, caller sdk.Address) *txn {
	return &txn{
		c:      c,
		ctx:    ctx,
		id:     uuid.NewString(),
		caller: caller,
		now:    c.clock.Now(),
		reads:  make(map[string]*string),
		staged: make(map[string]int),
	}
}

// get returns the value at key as this operation sees it, staged writes included.
func (t *txn) get(key string) (string, bool, error) {
	if i, ok := t.staged[key]; ok {
		return t.muts[i].Value, true, nil
	}
	if ptr, ok := t.reads[key]; ok {
		if ptr == nil {
			return "", false, nil
		}
		return *ptr, true, nil
	}
	val, err := t.c.store.Get(t.ctx, key)
	if errors.Is(err, state.ErrNotFound) {
		t.reads[key] = nil
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read state: %w", err)
	}
	t.reads[key] = &val
	return val, true, nil
}

func (t *txn) stage(m state.Mutation) {
	if i, ok := t.staged[m.Key]; ok {
		// a key created earlier in this operation must still be absent at commit
		m.Create = m.Create || t.muts[i].Create
		t.muts[i] = m
		return
	}
	t.staged[m.Key] = len(t.muts)
	t.muts = append(t.muts, m)
}

func (t *txn) put(key, value string) {
	t.stage(state.Put(key, value))
}

// create stages a first-writer-wins insert. onConflict is what the caller
// sees if another writer got there between our read and the commit.
func (t *txn) create(key, value string, onConflict error) {
	t.stage(state.Create(key, value))
	if t.conflict == nil {
		t.conflict = onConflict
	}
}

func (t *txn) emit(kind, line string) {
	t.events = append(t.events, sdk.Event{Kind: kind, Line: line, TxID: t.id, Timestamp: t.now})
}

// commit writes staged state as one batch, then publishes events.
func (t *txn) commit() error {
	if err := t.c.store.Commit(t.ctx, t.muts...); err != nil {
		if errors.Is(err, state.ErrExists) {
			if t.conflict != nil {
				return t.conflict
			}
			return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}
		return fmt.Errorf("commit state: %w", err)
	}

	for _, ev := range t.events {
		t.c.events.Log(t.ctx, ev)
	}
	return nil
}
