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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolloch/actors/internal/lib"
	"github.com/kolloch/actors/internal/types"
)

// blockWorker occupies one worker of the dispatcher until the returned
// function is called
func blockWorker(t *testing.T, dispatcher *Dispatcher) func() {
	release := make(chan types.Unit)
	started := make(chan types.Unit)
	require.NoError(t, dispatcher.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	var once sync.Once
	return func() {
		once.Do(func() { close(release) })
	}
}

func TestPooledCell(t *testing.T) {
	for _, batchSize := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("With batch size %d", batchSize), func(t *testing.T) {
			provider := newRecordingProvider()
			spawner := newTestPoolSpawner(t, WithWorkers(1), WithBatchSize(batchSize), WithMeterProvider(provider))
			unblock := blockWorker(t, spawner.Dispatcher())
			defer unblock()

			cell, err := Spawn[counterMessage](spawner, &counter{})
			require.NoError(t, err)

			for range 10 {
				require.NoError(t, cell.Send(incBy(1)))
			}
			reply := NewChannel[int](1)
			require.NoError(t, cell.Send(getCount(reply.Ref())))

			// one job was submitted by the first send, the others found it pending
			assert.EqualValues(t, 1, provider.total("actors.jobs.submitted"))

			unblock()
			assert.Equal(t, 10, <-reply.C())

			// full batches resubmit themselves, the last one finds the mailbox empty
			expected := int64(11/batchSize + 1)
			require.Eventually(t, func() bool {
				return provider.total("actors.jobs.submitted") == expected
			}, waitFor, tick)

			actor, err := cell.StopAndJoin()
			require.NoError(t, err)
			assert.Equal(t, 10, actor.count)
			assert.EqualValues(t, 11, provider.total("actors.messages.processed"))
		})
	}
	t.Run("With actors taking turns on a single worker", func(t *testing.T) {
		spawner := newTestPoolSpawner(t, WithWorkers(1), WithBatchSize(1))
		unblock := blockWorker(t, spawner.Dispatcher())
		defer unblock()

		var (
			mu    sync.Mutex
			trace []string
		)
		record := func(name string) ProcessFunc[int] {
			return func(n int) {
				mu.Lock()
				trace = append(trace, fmt.Sprintf("%s%d", name, n))
				mu.Unlock()
			}
		}

		first, err := Spawn[int](spawner, record("a"))
		require.NoError(t, err)
		second, err := Spawn[int](spawner, record("b"))
		require.NoError(t, err)

		for i := range 3 {
			require.NoError(t, first.Send(i))
		}
		require.NoError(t, second.Send(0))

		unblock()
		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(trace) == 4
		}, waitFor, tick)

		_, err = first.StopAndJoin()
		require.NoError(t, err)
		_, err = second.StopAndJoin()
		require.NoError(t, err)

		assert.Equal(t, []string{"a0", "b0", "a1", "a2"}, trace)
	})
	t.Run("With stop waiting for the batch in flight", func(t *testing.T) {
		spawner := newTestPoolSpawner(t, WithWorkers(2))
		actor := newGate()
		cell, err := Spawn[int](spawner, actor)
		require.NoError(t, err)

		require.NoError(t, cell.Send(0))
		<-actor.entered
		for i := 1; i < 5; i++ {
			require.NoError(t, cell.Send(i))
		}

		stopped := make(chan *gate, 1)
		go func() {
			final, err := cell.StopAndJoin()
			assert.NoError(t, err)
			stopped <- final
		}()

		lib.Pause(50 * time.Millisecond)
		select {
		case <-stopped:
			require.FailNow(t, "StopAndJoin returned while the actor was busy")
		default:
		}

		close(actor.release)
		final := <-stopped
		assert.Equal(t, 5, final.count)
	})
	t.Run("With a job running after stop", func(t *testing.T) {
		spawner := newTestPoolSpawner(t, WithWorkers(1))
		unblock := blockWorker(t, spawner.Dispatcher())
		defer unblock()

		cell, err := Spawn[int](spawner, &recorder{})
		require.NoError(t, err)
		require.NoError(t, cell.Send(1))
		require.NoError(t, cell.Send(2))

		// the job is still queued behind the blocked worker, stop drains inline
		actor, err := cell.StopAndJoin()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, actor.received)

		unblock()
		lib.Pause(20 * time.Millisecond)
		assert.Equal(t, []int{1, 2}, actor.received)
	})
	t.Run("With the live actors tracked", func(t *testing.T) {
		spawner := newTestPoolSpawner(t)
		first, err := Spawn[int](spawner, &recorder{}, WithID("first"))
		require.NoError(t, err)
		second, err := Spawn[int](spawner, &recorder{}, WithID("second"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"first", "second"}, spawner.Live())

		_, err = first.StopAndJoin()
		require.NoError(t, err)
		assert.Equal(t, []string{"second"}, spawner.Live())

		_, err = second.StopAndJoin()
		require.NoError(t, err)
		assert.Empty(t, spawner.Live())
	})
}
