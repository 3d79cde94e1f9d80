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
	"errors"
	"sync"

	"go.uber.org/atomic"

	gerrors "github.com/kolloch/actors/errors"
	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/log"
)

// cellRuntime holds the state every cell shares regardless of how it
// schedules its actor: identity, intake gate, stop and failure tracking.
type cellRuntime struct {
	id       string
	strategy string
	logger   log.Logger
	metric   *metric.CellMetric

	// intake guards closed. Senders hold the read lock while enqueueing so
	// that closing the intake waits for in-flight sends to land.
	intake sync.RWMutex
	closed bool

	stopping atomic.Bool
	failure  atomic.Error
}

func newCellRuntime(id, strategy string, logger log.Logger, cellMetric *metric.CellMetric) *cellRuntime {
	return &cellRuntime{
		id:       id,
		strategy: strategy,
		logger:   logger.With("actor", id, "strategy", strategy),
		metric:   cellMetric,
	}
}

// ID returns the identifier of the cell
func (rt *cellRuntime) ID() string {
	return rt.id
}

// String returns the string representation of the cell
func (rt *cellRuntime) String() string {
	return rt.strategy + "/" + rt.id
}

// admit runs enqueue while the intake is open and returns the failure
// reason, if any.
func (rt *cellRuntime) admit(enqueue func() error) error {
	rt.intake.RLock()
	defer rt.intake.RUnlock()

	if rt.closed {
		return rt.unreachable()
	}

	if err := enqueue(); err != nil {
		if errors.Is(err, gerrors.ErrMailboxFull) {
			return gerrors.ErrMailboxFull
		}
		return rt.unreachable()
	}
	return nil
}

// unreachable returns the reason given to senders once the cell stopped
// accepting messages
func (rt *cellRuntime) unreachable() error {
	if rt.failure.Load() != nil {
		return gerrors.ErrUnknown
	}
	return gerrors.ErrUnreachable
}

// closeIntake makes every subsequent send fail.
// It returns once the sends already in progress have completed.
func (rt *cellRuntime) closeIntake() {
	rt.intake.Lock()
	rt.closed = true
	rt.intake.Unlock()
}

// beginStop marks the cell as stopping.
// Only the first caller wins; others get ErrAlreadyStopped.
func (rt *cellRuntime) beginStop() error {
	if !rt.stopping.CompareAndSwap(false, true) {
		return gerrors.ErrAlreadyStopped
	}
	return nil
}

// poison records the panic raised by the actor and closes the intake
func (rt *cellRuntime) poison(err error) {
	rt.failure.Store(err)
	rt.closeIntake()
	rt.logger.Errorf("actor=(%s) panicked: %v", rt.String(), err)
	rt.metric.Panicked(context.Background(), rt.strategy)
}

// poisoned reports whether the actor panicked
func (rt *cellRuntime) poisoned() bool {
	return rt.failure.Load() != nil
}

// stopResult returns the error to hand back together with the actor
func (rt *cellRuntime) stopResult() error {
	if err := rt.failure.Load(); err != nil {
		return gerrors.NewErrUnknown(err)
	}
	return nil
}

// processed records one message handed to the actor
func (rt *cellRuntime) processed() {
	rt.logger.Debug("message processed")
	rt.metric.Processed(context.Background(), rt.strategy)
}

// rejectMessage records the failed delivery and wraps the message
func rejectMessage[M any](rt *cellRuntime, reason error, message M) error {
	rt.metric.SendFailed(context.Background(), rt.strategy, reasonLabel(reason))
	return newSendError(reason, message)
}
