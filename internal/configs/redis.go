package config

import (
	"github.com/redis/rueidis"
)

// NewRedisClient dials redis once. Callers decide whether a failure is fatal:
// the API treats the queue as optional, the worker retries in its own loop.
func NewRedisClient(addr string) (rueidis.Client, error) {
	return rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
}
