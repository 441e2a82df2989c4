// Package events publishes committed fund events to external buses.
package events

import (
	"context"
	"fmt"

	"github.com/CosmWasm/tinyjson"
	"github.com/redis/go-redis/v9"

	"community_fund/sdk"
)

// DefaultStream is the redis stream events land in unless configured otherwise.
const DefaultStream = "fund.events"

// RedisStream appends every event to a redis stream.
type RedisStream struct {
	rdb    *redis.Client
	stream string
}

func NewRedisStream(rdb *redis.Client, stream string) *RedisStream {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStream{rdb: rdb, stream: stream}
}

// Publish adds the event as one stream entry; "json" carries the full record.
// Example payload: XADD fund.events * kind pc line "pc|owner:alice|id:0|am:5" ...
func (r *RedisStream) Publish(ctx context.Context, ev sdk.Event) error {
	payload, err := tinyjson.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	_, err = r.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"kind": ev.Kind,
			"line": ev.Line,
			"tx":   ev.TxID,
			"ts":   ev.Timestamp,
			"json": string(payload),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", r.stream, err)
	}
	return nil
}

// ConnectRedisStream dials url and verifies the connection before use.
// Example payload: events.ConnectRedisStream(ctx, "redis://localhost:6379/0", "fund.events")
func ConnectRedisStream(ctx context.Context, url, stream string) (*RedisStream, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStream(rdb, stream), nil
}

func (r *RedisStream) Close() error {
	return r.rdb.Close()
}
