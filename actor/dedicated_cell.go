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
	"errors"
	"runtime"

	gerrors "github.com/kolloch/actors/errors"
	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/internal/types"
	"github.com/kolloch/actors/log"
)

// envelope is what travels through the mailbox of a dedicated cell.
// A non-nil stop channel turns it into the stop signal.
type envelope[M any, A Actor[M]] struct {
	message M
	stop    chan<- A
}

// DedicatedCell runs one actor on its own goroutine.
//
// The goroutine blocks on the mailbox and hands every message to the actor
// in arrival order. It exits when it receives the stop signal queued by
// StopAndJoin, or when the actor panics.
type DedicatedCell[M any, A Actor[M]] struct {
	*cellRuntime

	actor   A
	mailbox Mailbox[envelope[M, A]]
	exited  chan types.Unit
}

// enforce compilation error
var _ Cell[int, ProcessFunc[int]] = (*DedicatedCell[int, ProcessFunc[int]])(nil)

func newDedicatedCell[M any, A Actor[M]](actor A, id string, logger log.Logger, cellMetric *metric.CellMetric, config *spawnConfig) *DedicatedCell[M, A] {
	cell := &DedicatedCell[M, A]{
		cellRuntime: newCellRuntime(id, dedicatedStrategy, logger, cellMetric),
		actor:       actor,
		mailbox:     newMailbox[envelope[M, A]](config),
		exited:      make(chan types.Unit),
	}
	go cell.run()
	return cell
}

// Ref returns a reference to the actor
func (c *DedicatedCell[M, A]) Ref() ActorRef[M] {
	return ActorRef[M]{target: c}
}

// Send delivers a message to the actor without blocking
func (c *DedicatedCell[M, A]) Send(message M) error {
	return c.send(message)
}

// StopAndJoin stops the actor once every message sent before the call has
// been processed, waits for its goroutine to exit and returns the actor.
//
// When the actor panicked earlier the actor is returned together with an
// error matching ErrUnknown. A second call returns ErrAlreadyStopped.
func (c *DedicatedCell[M, A]) StopAndJoin() (A, error) {
	if err := c.beginStop(); err != nil {
		var zero A
		return zero, err
	}

	c.closeIntake()

	done := make(chan A, 1)
	for {
		err := c.mailbox.Enqueue(envelope[M, A]{stop: done})
		if err == nil || !errors.Is(err, gerrors.ErrMailboxFull) {
			// a disposed mailbox means the goroutine is already gone
			break
		}
		// the intake is closed, so the goroutine is the only one freeing slots
		runtime.Gosched()
	}

	<-c.exited
	select {
	case actor := <-done:
		return actor, c.stopResult()
	default:
		return c.actor, c.stopResult()
	}
}

func (c *DedicatedCell[M, A]) send(message M) error {
	reason := c.admit(func() error {
		return c.mailbox.Enqueue(envelope[M, A]{message: message})
	})
	if reason != nil {
		return rejectMessage(c.cellRuntime, reason, message)
	}
	return nil
}

// run is the goroutine owning the actor
func (c *DedicatedCell[M, A]) run() {
	defer close(c.exited)

	for {
		env, err := c.mailbox.Receive()
		if err != nil {
			return
		}

		if env.stop != nil {
			c.logger.Debug("shutting down")
			c.mailbox.Dispose()
			env.stop <- c.actor
			return
		}

		if err := invoke[M](c.actor, env.message); err != nil {
			c.poison(err)
			c.mailbox.Dispose()
			return
		}
		c.processed()
	}
}
