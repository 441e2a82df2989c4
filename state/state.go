// Package state is the key/value store the fund contract persists into.
//
// Keys are opaque binary strings. A commit applies a batch of mutations
// atomically; mutations flagged Create only succeed if the key is absent,
// which is how "first writer wins" guards (duplicate votes, one-time
// initialization) are enforced by the backend itself.
package state

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("state: key not found")
	// ErrExists is returned by Commit when a Create mutation hits an existing key.
	ErrExists = errors.New("state: key already exists")
)

// Mutation is a single staged write.
type Mutation struct {
	Key    string
	Value  string
	Create bool
}

// Put overwrites key unconditionally.
func Put(key, value string) Mutation {
	return Mutation{Key: key, Value: value}
}

// Create writes key only if nobody wrote it before.
func Create(key, value string) Mutation {
	return Mutation{Key: key, Value: value, Create: true}
}

// Store is implemented by the memory, mysql and redis backends.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	// Commit applies all mutations or none of them.
	Commit(ctx context.Context, muts ...Mutation) error
	Close() error
}
