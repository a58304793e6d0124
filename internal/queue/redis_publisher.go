package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/rueidis"
)

// RedisPublisher appends task descriptors to the tail of a shared redis list.
// The client is established once at startup; if that failed the publisher is
// constructed with a nil client and every Publish is a no-op.
type RedisPublisher struct {
	client rueidis.Client
	key    string
}

func NewRedisPublisher(client rueidis.Client, queueKey string) *RedisPublisher {
	if client == nil {
		log.Println("queue: no redis connection, task publishing disabled")
	}
	return &RedisPublisher{
		client: client,
		key:    queueKey,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, task Task) {
	if p.client == nil {
		return
	}

	body, err := json.Marshal(task)
	if err != nil {
		log.Printf("queue: marshal task for ticket %d: %v", task.TicketID, err)
		return
	}

	cmd := p.client.B().Rpush().Key(p.key).Element(string(body)).Build()
	if err := p.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("queue: publish task for ticket %d: %v", task.TicketID, err)
	}
}
