/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"context"
	"sync"

	"go.uber.org/atomic"

	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/log"
)

// PooledCell runs one actor on the worker pool of a Dispatcher.
//
// A send enqueues the message and, when no job is pending for the actor,
// submits one. The job processes at most batchSize messages then either
// submits a continuation of itself or, when the mailbox is empty, clears the
// scheduled flag. At most one job per actor is queued or running at a time,
// so the actor is never processed concurrently.
type PooledCell[M any, A Actor[M]] struct {
	*cellRuntime

	dispatcher *Dispatcher
	batchSize  int
	onStop     func(id string)

	// scheduled is true while a job for this actor is queued or running
	scheduled atomic.Bool

	// mu is held while consuming the mailbox and touching the actor
	mu      sync.Mutex
	actor   A
	mailbox Mailbox[M]
	stopped bool
}

// enforce compilation error
var _ Cell[int, ProcessFunc[int]] = (*PooledCell[int, ProcessFunc[int]])(nil)

func newPooledCell[M any, A Actor[M]](actor A, id string, dispatcher *Dispatcher, logger log.Logger, cellMetric *metric.CellMetric, config *spawnConfig, onStop func(id string)) *PooledCell[M, A] {
	return &PooledCell[M, A]{
		cellRuntime: newCellRuntime(id, pooledStrategy, logger, cellMetric),
		dispatcher:  dispatcher,
		batchSize:   dispatcher.BatchSize(),
		onStop:      onStop,
		actor:       actor,
		mailbox:     newMailbox[M](config),
	}
}

// Ref returns a reference to the actor
func (c *PooledCell[M, A]) Ref() ActorRef[M] {
	return ActorRef[M]{target: c}
}

// Send delivers a message to the actor without blocking
func (c *PooledCell[M, A]) Send(message M) error {
	return c.send(message)
}

// StopAndJoin stops the actor and returns it.
//
// It waits for the batch in flight, if any, then processes the messages
// still in the mailbox on the calling goroutine. When it returns no job
// touches the actor anymore and the cell has released its Dispatcher.
//
// When the actor panicked the actor is returned together with an error
// matching ErrUnknown. A second call returns ErrAlreadyStopped.
func (c *PooledCell[M, A]) StopAndJoin() (A, error) {
	if err := c.beginStop(); err != nil {
		var zero A
		return zero, err
	}

	c.closeIntake()

	c.mu.Lock()
	if !c.poisoned() {
		c.logger.Debug("shutting down")
		for {
			message, ok := c.mailbox.Dequeue()
			if !ok {
				break
			}
			if err := invoke[M](c.actor, message); err != nil {
				c.poison(err)
				break
			}
			c.processed()
		}
	}
	actor := c.actor
	c.stopped = true
	c.mailbox.Dispose()
	c.mu.Unlock()

	c.dispatcher.release()
	if c.onStop != nil {
		c.onStop(c.id)
	}
	return actor, c.stopResult()
}

func (c *PooledCell[M, A]) send(message M) error {
	reason := c.admit(func() error {
		if err := c.mailbox.Enqueue(message); err != nil {
			return err
		}
		// scheduling happens under the intake lock so that StopAndJoin
		// cannot release the dispatcher in between
		c.schedule()
		return nil
	})
	if reason != nil {
		return rejectMessage(c.cellRuntime, reason, message)
	}
	return nil
}

// schedule submits a job unless one is already pending
func (c *PooledCell[M, A]) schedule() {
	if c.scheduled.CompareAndSwap(false, true) {
		c.submit()
	}
}

// submit hands a job to the dispatcher. The caller owns the scheduled flag.
func (c *PooledCell[M, A]) submit() {
	if err := c.dispatcher.Submit(c.drain); err != nil {
		c.scheduled.Store(false)
		c.logger.Warnf("actor=(%s) job rejected: %v", c.String(), err)
		return
	}
	c.metric.Submitted(context.Background(), c.strategy)
}

// drain is the job run by the worker pool.
//
// It never loops on the worker: after batchSize messages it resubmits
// itself so other actors get a turn, keeping the scheduled flag set.
func (c *PooledCell[M, A]) drain() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.poisoned() {
		return
	}

	processed := 0
	for processed < c.batchSize {
		message, ok := c.mailbox.Dequeue()
		if !ok {
			break
		}
		if err := invoke[M](c.actor, message); err != nil {
			c.poison(err)
			c.mailbox.Dispose()
			return
		}
		processed++
		c.processed()
	}

	if processed == c.batchSize {
		c.submit()
		return
	}

	c.logger.Debug("mailbox empty")
	c.scheduled.Store(false)

	// a send may have enqueued after the last Dequeue and seen the flag
	// still set; pick its message up here
	if !c.mailbox.IsEmpty() && c.scheduled.CompareAndSwap(false, true) {
		c.submit()
	}
}
