package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTableSameKeyTwiceInOneSet(t *testing.T) {
	lt := newLockTable()
	unlock, err := lt.lock(context.Background(), "a", "a", vaultKey())
	require.NoError(t, err)
	unlock()

	// everything was released
	unlock, err = lt.lock(context.Background(), "a", vaultKey())
	require.NoError(t, err)
	unlock()
}

func TestLockTableHonorsContext(t *testing.T) {
	lt := newLockTable()
	unlock, err := lt.lock(context.Background(), vaultKey())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = lt.lock(ctx, proposalKey("alice", 0), vaultKey())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	// the partially acquired proposal stripe was given back
	unlock, err = lt.lock(context.Background(), proposalKey("alice", 0))
	require.NoError(t, err)
	unlock()
}

func TestKeysDoNotCollide(t *testing.T) {
	keys := map[string]string{
		profileKey("alice"):              "profile",
		proposalKey("alice", 0):          "proposal",
		voteKey("bob", "alice", 0):       "vote",
		voteKey("bo", "balice", 0):       "vote2",
		registryKey():                    "registry",
		vaultKey():                       "vault",
		indexMetaKey(ownersIndex()):      "owners meta",
		indexChunkKey(ownersIndex(), 0):  "owners chunk",
		indexChunkKey(proposalVotersIndex("alice", 0), 0): "voters chunk",
	}
	assert.Len(t, keys, 9)
}
