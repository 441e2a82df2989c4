package state_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_fund/state"
)

func newTestRedis(t *testing.T) (*state.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := state.OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0", "fund:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisGetPut(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	_, err := r.Get(ctx, "\x01alice")
	assert.ErrorIs(t, err, state.ErrNotFound)

	require.NoError(t, r.Commit(ctx, state.Put("\x01alice", "1"), state.Put("\x31", "")))
	require.NoError(t, r.Commit(ctx, state.Put("\x01alice", "2")))
	v, err := r.Get(ctx, "\x01alice")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	v, err = r.Get(ctx, "\x31")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	raw, err := mr.Get("fund:\x01alice")
	require.NoError(t, err)
	assert.Equal(t, "2", raw, "keys live under the prefix")
}

func TestRedisCreateConflictIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	require.NoError(t, r.Commit(ctx, state.Create("a", "1")))

	err := r.Commit(ctx, state.Put("b", "2"), state.Put("a", "y"), state.Create("a", "x"))
	require.ErrorIs(t, err, state.ErrExists)

	_, err = r.Get(ctx, "b")
	assert.ErrorIs(t, err, state.ErrNotFound, "put in a failed batch must not land")
	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.False(t, mr.Exists("fund:b"))
}

func TestRedisDuplicateCreateInOneBatch(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)
	err := r.Commit(ctx, state.Create("k", "1"), state.Create("k", "2"))
	assert.ErrorIs(t, err, state.ErrExists)
	assert.Empty(t, mr.Keys())
}

func TestRedisCommitUnreachable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := state.NewRedis(rdb, "fund:")
	mr.Close()

	err := r.Commit(ctx, state.Put("k", "v"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, state.ErrExists)
	_, err = r.Get(ctx, "k")
	assert.NotErrorIs(t, err, state.ErrNotFound)
	_ = r.Close()
}

func TestOpenRedisBadURL(t *testing.T) {
	_, err := state.OpenRedis(context.Background(), "http://nope", "fund:")
	assert.Error(t, err)
}
