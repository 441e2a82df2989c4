package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// commitScript checks every create key first and only then writes, so a
// conflicting batch leaves nothing behind. ARGV holds one flag per key
// followed by one value per key.
var commitScript = redis.NewScript(`
local n = #KEYS
for i = 1, n do
  if ARGV[i] == "1" and redis.call("EXISTS", KEYS[i]) == 1 then
    return i
  end
end
for i = 1, n do
  redis.call("SET", KEYS[i], ARGV[n + i])
end
return 0
`)

// Redis stores state as plain string keys under a prefix.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// OpenRedis parses a redis:// url and pings the server.
// Example payload: state.OpenRedis(ctx, "redis://localhost:6379/0", "fund:")
func OpenRedis(ctx context.Context, url, prefix string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedis(rdb, prefix), nil
}

func NewRedis(rdb *redis.Client, prefix string) *Redis {
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %x: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Commit(ctx context.Context, muts ...Mutation) error {
	if len(muts) == 0 {
		return nil
	}
	keys := make([]string, len(muts))
	args := make([]interface{}, 2*len(muts))
	created := make(map[string]struct{})
	for i, m := range muts {
		keys[i] = r.prefix + m.Key
		if m.Create {
			if _, ok := created[m.Key]; ok {
				return fmt.Errorf("%w: %x", ErrExists, m.Key)
			}
			created[m.Key] = struct{}{}
			args[i] = "1"
		} else {
			args[i] = "0"
		}
		args[len(muts)+i] = m.Value
	}
	idx, err := commitScript.Run(ctx, r.rdb, keys, args...).Int()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if idx > 0 {
		return fmt.Errorf("%w: %x", ErrExists, muts[idx-1].Key)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
