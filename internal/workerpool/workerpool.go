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

// Package workerpool provides a fixed-size pool of worker goroutines fed by an
// unbounded FIFO task queue.
//
// Tasks may submit further tasks from inside a worker: the queue never blocks
// producers, so a task resubmitting itself cannot deadlock the pool.
package workerpool

import (
	"runtime"
	"sync"

	"github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/kolloch/actors/errors"
)

const (
	// maxWorkers caps the number of worker goroutines of a pool
	maxWorkers = 1024
	// defaultQueueHint is the initial capacity of the task queue
	defaultQueueHint = 1024
)

// WorkerPool runs submitted tasks on a fixed number of goroutines.
type WorkerPool struct {
	numWorkers     int             // Number of worker goroutines
	queueHint      int64           // Initial capacity of the task queue
	tasks          *queue.Queue    // Pending tasks, FIFO
	group          *errgroup.Group // Tracks the worker goroutines
	mutex          sync.RWMutex    // Orders submissions against Stop
	started        atomic.Bool     // Flag indicating if the pool has been started
	stopped        atomic.Bool     // Flag indicating if the pool has been stopped
	spawnedWorkers atomic.Int64    // Counter for tracking running workers
}

// New creates a new worker pool with the given options.
// The number of workers defaults to runtime.NumCPU().
func New(opts ...Option) *WorkerPool {
	wp := &WorkerPool{
		numWorkers: runtime.NumCPU(),
		queueHint:  defaultQueueHint,
	}

	for _, opt := range opts {
		opt.Apply(wp)
	}

	if wp.numWorkers < 1 {
		wp.numWorkers = 1
	} else if wp.numWorkers > maxWorkers {
		wp.numWorkers = maxWorkers
	}

	if wp.queueHint < 1 {
		wp.queueHint = defaultQueueHint
	}

	return wp
}

// NumWorkers returns the number of worker goroutines of the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// GetSpawnedWorkers returns the current count of running workers.
func (wp *WorkerPool) GetSpawnedWorkers() int {
	return int(wp.spawnedWorkers.Load())
}

// Pending returns a snapshot of the number of queued tasks
func (wp *WorkerPool) Pending() int64 {
	wp.mutex.RLock()
	defer wp.mutex.RUnlock()
	if wp.tasks == nil {
		return 0
	}
	return wp.tasks.Len()
}

// Start spawns the worker goroutines.
// It's safe to call Start multiple times.
func (wp *WorkerPool) Start() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()
	if wp.started.Load() {
		return
	}

	wp.tasks = queue.New(wp.queueHint)
	wp.group = new(errgroup.Group)
	for range wp.numWorkers {
		wp.spawnedWorkers.Inc()
		wp.group.Go(wp.work)
	}
	wp.started.Store(true)
}

// SubmitWork queues a task for execution by one of the workers.
// It returns an error when the pool has not been started or has been stopped,
// in which case the task will never run.
func (wp *WorkerPool) SubmitWork(task func()) error {
	wp.mutex.RLock()
	defer wp.mutex.RUnlock()

	if !wp.started.Load() {
		return gerrors.ErrPoolNotStarted
	}

	if wp.stopped.Load() {
		return gerrors.ErrPoolStopped
	}

	if err := wp.tasks.Put(task); err != nil {
		return gerrors.ErrPoolStopped
	}
	return nil
}

// Stop prevents new submissions. Every task accepted before Stop still runs;
// the workers exit once the queue has been drained.
// Stop does not wait for the workers; use Wait for that.
func (wp *WorkerPool) Stop() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if !wp.started.Load() || wp.stopped.Swap(true) {
		return
	}

	// one stop marker per worker, queued behind every accepted task
	for range wp.numWorkers {
		_ = wp.tasks.Put(stopMarker)
	}
}

// Wait blocks until every worker has exited. It returns immediately when
// the pool was never started. Calling Wait from a task deadlocks.
func (wp *WorkerPool) Wait() {
	wp.mutex.RLock()
	group := wp.group
	wp.mutex.RUnlock()

	if group == nil {
		return
	}
	_ = group.Wait()
}

var stopMarker func()

// work is the main worker goroutine function that processes incoming tasks.
func (wp *WorkerPool) work() error {
	defer wp.spawnedWorkers.Dec()

	for {
		items, err := wp.tasks.Get(1)
		if err != nil {
			return nil
		}

		if len(items) == 0 {
			continue
		}

		task, _ := items[0].(func())
		if task == nil {
			return nil
		}

		task()
	}
}
