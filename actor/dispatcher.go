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

	"go.uber.org/atomic"

	gerrors "github.com/kolloch/actors/errors"
	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/internal/workerpool"
	"github.com/kolloch/actors/log"
)

// Dispatcher owns the worker pool shared by pooled actors.
//
// It is reference counted: the creator holds one reference, released by
// Close, and every PoolSpawner and every running PooledCell holds one more.
// The pool stops, after running the jobs already queued, when the last
// reference is released.
type Dispatcher struct {
	pool      *workerpool.WorkerPool
	batchSize int
	logger    log.Logger
	metric    *metric.CellMetric

	refs        atomic.Int64
	ownerClosed atomic.Bool
}

// NewDispatcher creates and starts a Dispatcher
func NewDispatcher(opts ...Option) (*Dispatcher, error) {
	config := newConfig(opts...)
	cellMetric, err := config.cellMetric()
	if err != nil {
		return nil, err
	}

	pool := workerpool.New(workerpool.WithNumWorkers(config.workers))
	pool.Start()

	dispatcher := &Dispatcher{
		pool:      pool,
		batchSize: config.batchSize,
		logger:    config.logger,
		metric:    cellMetric,
	}
	dispatcher.refs.Store(1)

	dispatcher.logger.Debugf("dispatcher started with %d workers", pool.NumWorkers())
	return dispatcher, nil
}

// Submit queues a job on the worker pool.
// It returns ErrDispatcherClosed once the pool has been torn down.
func (d *Dispatcher) Submit(job func()) error {
	if err := d.pool.SubmitWork(job); err != nil {
		if errors.Is(err, gerrors.ErrPoolStopped) {
			return gerrors.ErrDispatcherClosed
		}
		return err
	}
	return nil
}

// BatchSize returns the number of messages a job processes before yielding
func (d *Dispatcher) BatchSize() int {
	return d.batchSize
}

// Workers returns the number of worker goroutines
func (d *Dispatcher) Workers() int {
	return d.pool.NumWorkers()
}

// Refs returns the number of live references
func (d *Dispatcher) Refs() int64 {
	return d.refs.Load()
}

// IsClosed reports whether the worker pool has been torn down
func (d *Dispatcher) IsClosed() bool {
	return d.refs.Load() <= 0
}

// Close releases the creator's reference.
// It's safe to call Close multiple times.
func (d *Dispatcher) Close() {
	if d.ownerClosed.CompareAndSwap(false, true) {
		d.release()
	}
}

// Wait blocks until every worker goroutine has exited.
// It must not be called from a job.
func (d *Dispatcher) Wait() {
	d.pool.Wait()
}

// retain takes a reference unless the pool is already torn down
func (d *Dispatcher) retain() bool {
	for {
		refs := d.refs.Load()
		if refs <= 0 {
			return false
		}
		if d.refs.CompareAndSwap(refs, refs+1) {
			return true
		}
	}
}

// release drops a reference and stops the pool with the last one
func (d *Dispatcher) release() {
	if d.refs.Dec() == 0 {
		d.logger.Debug("stopping worker pool")
		d.pool.Stop()
	}
}
