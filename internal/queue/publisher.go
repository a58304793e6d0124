package queue

import "context"

// TaskPublisher is an optional capability injected into ticket creation.
// Publish is best-effort: implementations swallow every failure, and a nil
// publisher is a valid, silently degraded mode.
type TaskPublisher interface {
	Publish(ctx context.Context, task Task)
}
