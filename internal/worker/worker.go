package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"ticket-desk.com/ticket-desk/internal/queue"
)

// Conn is an established queue connection.
type Conn interface {
	Ping(ctx context.Context) error
	Pop(ctx context.Context, timeout time.Duration) (payload string, ok bool, err error)
	Close()
}

// Dialer establishes a fresh queue connection.
type Dialer func() (Conn, error)

type state int

const (
	stateConnecting state = iota
	stateProcessing
)

const (
	defaultReconnectDelay = 5 * time.Second
	defaultPopTimeout     = 5 * time.Second
	defaultErrorPause     = 1 * time.Second
	workDuration          = 500 * time.Millisecond
)

// Worker drains the task queue on a single logical thread. It starts in the
// connecting state, retries the dial indefinitely, and falls back to
// connecting whenever the established connection fails.
type Worker struct {
	dial   Dialer
	clock  Clock
	handle func(ctx context.Context, task queue.Task) error

	reconnectDelay time.Duration
	popTimeout     time.Duration
	errorPause     time.Duration

	id string
}

func New(dial Dialer) *Worker {
	w := &Worker{
		dial:           dial,
		clock:          realClock{},
		reconnectDelay: defaultReconnectDelay,
		popTimeout:     defaultPopTimeout,
		errorPause:     defaultErrorPause,
		id:             uuid.NewString()[:8],
	}
	w.handle = w.simulateWork
	return w
}

// Run blocks until ctx is cancelled. There is no other terminal state.
func (w *Worker) Run(ctx context.Context) {
	log.Printf("worker %s started", w.id)

	st := stateConnecting
	var conn Conn

	for ctx.Err() == nil {
		switch st {
		case stateConnecting:
			c, err := w.connect(ctx)
			if err != nil {
				log.Printf("worker %s: queue unreachable, retrying in %s: %v", w.id, w.reconnectDelay, err)
				w.clock.Sleep(ctx, w.reconnectDelay)
				continue
			}
			conn = c
			st = stateProcessing
			log.Printf("worker %s connected, waiting for tasks", w.id)

		case stateProcessing:
			payload, ok, err := conn.Pop(ctx, w.popTimeout)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				var transient *queue.TransientError
				if errors.As(err, &transient) {
					// The connection is still good; pause and poll again.
					log.Printf("worker %s: queue error: %v", w.id, err)
					w.clock.Sleep(ctx, w.errorPause)
					continue
				}
				log.Printf("worker %s: queue connection lost, reconnecting: %v", w.id, err)
				conn.Close()
				conn = nil
				st = stateConnecting
				continue
			}
			if !ok {
				// Empty poll; stay responsive to shutdown.
				continue
			}

			var task queue.Task
			if err := json.Unmarshal([]byte(payload), &task); err != nil {
				log.Printf("worker %s: dropping malformed task payload: %v", w.id, err)
				continue
			}

			if err := w.handle(ctx, task); err != nil {
				log.Printf("worker %s: task for ticket %d failed: %v", w.id, task.TicketID, err)
				w.clock.Sleep(ctx, w.errorPause)
				continue
			}
			log.Printf("worker %s completed task for ticket %d", w.id, task.TicketID)
		}
	}

	if conn != nil {
		conn.Close()
	}
	log.Printf("worker %s stopped", w.id)
}

func (w *Worker) connect(ctx context.Context) (Conn, error) {
	conn, err := w.dial()
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// simulateWork stands in for the real side effect (document generation,
// notification dispatch).
func (w *Worker) simulateWork(ctx context.Context, task queue.Task) error {
	log.Printf("worker %s processing ticket %d (%s)", w.id, task.TicketID, task.Kind)
	w.clock.Sleep(ctx, workDuration)
	return nil
}
