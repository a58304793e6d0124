package queue

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisConsumer pops task payloads from the head of the shared list. It
// satisfies the worker's Conn interface.
type RedisConsumer struct {
	client rueidis.Client
	key    string
}

func NewRedisConsumer(client rueidis.Client, queueKey string) *RedisConsumer {
	return &RedisConsumer{
		client: client,
		key:    queueKey,
	}
}

func (c *RedisConsumer) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

// Pop blocks up to timeout for an item. It returns ok=false without error
// when the wait timed out with an empty queue. Server error replies (the
// connection is still healthy) come back wrapped in TransientError; anything
// else is a connection failure.
func (c *RedisConsumer) Pop(ctx context.Context, timeout time.Duration) (string, bool, error) {
	cmd := c.client.B().Blpop().Key(c.key).Timeout(timeout.Seconds()).Build()
	values, err := c.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", false, nil
		}
		if _, ok := rueidis.IsRedisErr(err); ok {
			return "", false, &TransientError{Err: err}
		}
		return "", false, err
	}
	// BLPOP replies [key, value].
	if len(values) < 2 {
		return "", false, nil
	}
	return values[1], true, nil
}

func (c *RedisConsumer) Close() {
	c.client.Close()
}
