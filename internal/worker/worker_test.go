package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-desk.com/ticket-desk/internal/queue"
)

// fakeClock records requested waits without sleeping, so the state machine
// runs deterministically.
type fakeClock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

type popResult struct {
	payload string
	ok      bool
	err     error
}

// scriptedConn replays a fixed sequence of pop results, then signals the
// test to stop the loop.
type scriptedConn struct {
	pops    []popResult
	pingErr error
	closed  bool
	done    func()
}

func (c *scriptedConn) Ping(ctx context.Context) error { return c.pingErr }

func (c *scriptedConn) Pop(ctx context.Context, timeout time.Duration) (string, bool, error) {
	if len(c.pops) == 0 {
		c.done()
		return "", false, nil
	}
	next := c.pops[0]
	c.pops = c.pops[1:]
	return next.payload, next.ok, next.err
}

func (c *scriptedConn) Close() { c.closed = true }

func newTestWorker(dial Dialer) (*Worker, *fakeClock) {
	clock := &fakeClock{}
	w := New(dial)
	w.clock = clock
	return w, clock
}

func TestWorkerProcessesTask(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{
		pops: []popResult{
			{payload: `{"ticket_id":7,"subject":"Printer broken","task_kind":"ticket_created"}`, ok: true},
		},
		done: cancel,
	}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		return conn, nil
	})

	var handled []queue.Task
	w.handle = func(ctx context.Context, task queue.Task) error {
		handled = append(handled, task)
		return nil
	}

	w.Run(ctx)

	require.Len(t, handled, 1)
	assert.Equal(t, uint(7), handled[0].TicketID)
	assert.Equal(t, "Printer broken", handled[0].Subject)
	assert.Equal(t, "ticket_created", handled[0].Kind)
	assert.Equal(t, 1, dials)
	assert.Empty(t, clock.recorded())
}

func TestWorkerEmptyPollsKeepProcessing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{
		pops: []popResult{{}, {}, {}},
		done: cancel,
	}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		return conn, nil
	})

	handled := 0
	w.handle = func(ctx context.Context, task queue.Task) error {
		handled++
		return nil
	}

	w.Run(ctx)

	assert.Equal(t, 1, dials)
	assert.Zero(t, handled)
	assert.Empty(t, clock.recorded())
}

func TestWorkerDropsMalformedPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{
		pops: []popResult{
			{payload: `{not json`, ok: true},
			{payload: `{"ticket_id":3,"subject":"ok","task_kind":"ticket_created"}`, ok: true},
		},
		done: cancel,
	}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		return conn, nil
	})

	var handled []queue.Task
	w.handle = func(ctx context.Context, task queue.Task) error {
		handled = append(handled, task)
		return nil
	}

	w.Run(ctx)

	require.Len(t, handled, 1)
	assert.Equal(t, uint(3), handled[0].TicketID)
	assert.Equal(t, 1, dials)
	assert.Empty(t, clock.recorded())
}

func TestWorkerReconnectsOnConnectionError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	broken := &scriptedConn{
		pops: []popResult{{err: errors.New("connection reset")}},
		done: cancel,
	}
	healthy := &scriptedConn{
		pops: []popResult{
			{payload: `{"ticket_id":9,"subject":"after reconnect","task_kind":"ticket_created"}`, ok: true},
		},
		done: cancel,
	}

	conns := []*scriptedConn{broken, healthy}
	dials := 0
	w, _ := newTestWorker(func() (Conn, error) {
		conn := conns[dials]
		dials++
		return conn, nil
	})

	var handled []queue.Task
	w.handle = func(ctx context.Context, task queue.Task) error {
		handled = append(handled, task)
		return nil
	}

	w.Run(ctx)

	assert.Equal(t, 2, dials)
	assert.True(t, broken.closed)
	require.Len(t, handled, 1)
	assert.Equal(t, uint(9), handled[0].TicketID)
}

func TestWorkerRetriesWhileQueueUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{done: cancel}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		if dials <= 3 {
			return nil, errors.New("connection refused")
		}
		return conn, nil
	})

	w.Run(ctx)

	assert.Equal(t, 4, dials)
	assert.Equal(t, []time.Duration{
		defaultReconnectDelay,
		defaultReconnectDelay,
		defaultReconnectDelay,
	}, clock.recorded())
}

func TestWorkerRetriesWhenPingFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deaf := &scriptedConn{pingErr: errors.New("broken pipe")}
	healthy := &scriptedConn{done: cancel}

	conns := []*scriptedConn{deaf, healthy}
	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		conn := conns[dials]
		dials++
		return conn, nil
	})

	w.Run(ctx)

	assert.Equal(t, 2, dials)
	assert.True(t, deaf.closed)
	assert.Equal(t, []time.Duration{defaultReconnectDelay}, clock.recorded())
}

func TestWorkerPausesOnErrorReplyWithoutReconnecting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{
		pops: []popResult{
			{err: &queue.TransientError{Err: errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")}},
			{payload: `{"ticket_id":5,"subject":"after pause","task_kind":"ticket_created"}`, ok: true},
		},
		done: cancel,
	}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		return conn, nil
	})

	var handled []queue.Task
	w.handle = func(ctx context.Context, task queue.Task) error {
		handled = append(handled, task)
		return nil
	}

	w.Run(ctx)

	// An error reply pauses the loop but never tears down the connection.
	assert.Equal(t, 1, dials)
	require.Len(t, handled, 1)
	assert.Equal(t, uint(5), handled[0].TicketID)
	assert.Equal(t, []time.Duration{defaultErrorPause}, clock.recorded())
}

func TestWorkerPausesAfterHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	conn := &scriptedConn{
		pops: []popResult{
			{payload: `{"ticket_id":1,"subject":"a","task_kind":"ticket_created"}`, ok: true},
			{payload: `{"ticket_id":2,"subject":"b","task_kind":"ticket_created"}`, ok: true},
		},
		done: cancel,
	}

	dials := 0
	w, clock := newTestWorker(func() (Conn, error) {
		dials++
		return conn, nil
	})

	calls := 0
	w.handle = func(ctx context.Context, task queue.Task) error {
		calls++
		if calls == 1 {
			return errors.New("smtp timeout")
		}
		return nil
	}

	w.Run(ctx)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, dials)
	assert.Equal(t, []time.Duration{defaultErrorPause}, clock.recorded())
}
