package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pushchain/ccip-receiver/ccipreceiver/types"
)

// RedisSink publishes event envelopes on a pub/sub channel and keeps the most
// recent ones in a capped list.
type RedisSink struct {
	rdb        *redis.Client
	channel    string
	listKey    string
	listMaxLen int64
}

// NewRedisSink creates a sink over rdb. An empty channel or listKey disables that output.
func NewRedisSink(rdb *redis.Client, channel, listKey string, listMaxLen int64) *RedisSink {
	return &RedisSink{
		rdb:        rdb,
		channel:    channel,
		listKey:    listKey,
		listMaxLen: listMaxLen,
	}
}

func (s *RedisSink) Emit(ctx context.Context, event types.Event) error {
	b, err := encodeEnvelope(event)
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if s.channel != "" {
			pipe.Publish(ctx, s.channel, b)
		}
		if s.listKey != "" {
			pipe.RPush(ctx, s.listKey, b)
			if s.listMaxLen > 0 {
				pipe.LTrim(ctx, s.listKey, -s.listMaxLen, -1)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis emit failed: %w", err)
	}
	return nil
}

func (s *RedisSink) Close() error {
	return s.rdb.Close()
}
