package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisPublisherNilClientIsNoop(t *testing.T) {
	publisher := NewRedisPublisher(nil, "task_queue")

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), Task{
			TicketID: 1,
			Subject:  "Printer broken",
			Kind:     "ticket_created",
		})
	})
}
