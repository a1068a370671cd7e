// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-cam-scan/internal/logger"
)

// Command is one unit of work executed on the queue goroutine.
type Command func(ctx context.Context) error

type queuedCommand struct {
	ctx  context.Context
	fn   Command
	done chan error
}

// CommandQueue executes commands one at a time in submission order.
//
// A device accepts a single outstanding command, so every call that talks to
// it goes through one queue. A command whose context is already done when it
// reaches the head is skipped and reports the context error. A running
// command is never interrupted.
type CommandQueue struct {
	logger *logger.Logger

	mu      sync.Mutex
	pending []*queuedCommand
	stopped bool
	cancel  context.CancelFunc
	wake    chan struct{}
	wg      sync.WaitGroup
}

func NewCommandQueue(logger *logger.Logger) *CommandQueue {
	return &CommandQueue{
		logger: logger,
		wake:   make(chan struct{}, 1),
	}
}

// Run starts the queue goroutine. Calling Run on a running queue is a no-op.
func (q *CommandQueue) Run(ctx context.Context) {
	q.mu.Lock()
	if q.cancel != nil || q.stopped {
		q.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	q.wg.Add(1)
	q.mu.Unlock()

	go q.loop(runCtx)
}

// Stop terminates the queue goroutine after the running command, if any,
// finishes. Commands still pending fail with ErrQueueStopped.
func (q *CommandQueue) Stop() {
	q.mu.Lock()
	cancel := q.cancel
	q.cancel = nil
	q.stopped = true
	q.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	q.wg.Wait()
	q.failPending()
}

// Do enqueues fn and blocks until it has run or been skipped.
func (q *CommandQueue) Do(ctx context.Context, fn Command) error {
	cmd := &queuedCommand{ctx: ctx, fn: fn, done: make(chan error, 1)}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrQueueStopped
	}
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}

	return <-cmd.done
}

// Len returns the number of commands waiting to run.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

func (q *CommandQueue) loop(ctx context.Context) {
	defer q.wg.Done()

	for {
		if ctx.Err() != nil {
			q.mu.Lock()
			q.stopped = true
			q.mu.Unlock()
			q.failPending()
			return
		}

		if cmd, ok := q.pop(); ok {
			q.execute(cmd)
			continue
		}

		select {
		case <-ctx.Done():
		case <-q.wake:
		}
	}
}

func (q *CommandQueue) pop() (*queuedCommand, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	cmd := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return cmd, true
}

func (q *CommandQueue) execute(cmd *queuedCommand) {
	if err := cmd.ctx.Err(); err != nil {
		q.logger.Debug().Err(err).Msg("skipping cancelled command")
		cmd.done <- err
		return
	}
	cmd.done <- cmd.fn(cmd.ctx)
}

func (q *CommandQueue) failPending() {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cmd := range pending {
		cmd.done <- ErrQueueStopped
	}
}
