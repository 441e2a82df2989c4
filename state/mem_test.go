package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_fund/state"
)

func TestMemGetMissing(t *testing.T) {
	m := state.NewMem()
	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestMemCreateConflictIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	m := state.NewMem()
	require.NoError(t, m.Commit(ctx, state.Create("a", "1")))

	err := m.Commit(ctx, state.Put("b", "2"), state.Create("a", "x"))
	require.ErrorIs(t, err, state.ErrExists)

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, state.ErrNotFound, "put in a failed batch must not land")
	v, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestMemDuplicateCreateInOneBatch(t *testing.T) {
	m := state.NewMem()
	err := m.Commit(context.Background(), state.Create("k", "1"), state.Create("k", "2"))
	assert.ErrorIs(t, err, state.ErrExists)
	assert.Equal(t, 0, m.Len())
}

func TestMemPutOverwrites(t *testing.T) {
	ctx := context.Background()
	m := state.NewMem()
	require.NoError(t, m.Commit(ctx, state.Put("k", "1")))
	require.NoError(t, m.Commit(ctx, state.Put("k", "2")))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestMemSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "sub", "fund.snap")

	m, err := state.OpenMem(file)
	require.NoError(t, err)
	require.NoError(t, m.Commit(ctx,
		state.Create("\x01alice", "\x01\x00\x00"),
		state.Put("\x31", ""),
	))
	require.NoError(t, m.Close())

	reopened, err := state.OpenMem(file)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Len())
	v, err := reopened.Get(ctx, "\x01alice")
	require.NoError(t, err)
	assert.Equal(t, "\x01\x00\x00", v)
	v, err = reopened.Get(ctx, "\x31")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
