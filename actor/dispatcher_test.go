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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/kolloch/actors/errors"
	"github.com/kolloch/actors/log"
)

func TestDispatcher(t *testing.T) {
	t.Run("With default options", func(t *testing.T) {
		dispatcher, err := NewDispatcher(WithBatchSize(0), WithWorkers(-1), WithLogger(nil))
		require.NoError(t, err)
		assert.Equal(t, DefaultBatchSize, dispatcher.BatchSize())
		assert.Positive(t, dispatcher.Workers())
		assert.EqualValues(t, 1, dispatcher.Refs())
		assert.False(t, dispatcher.IsClosed())

		dispatcher.Close()
		dispatcher.Close()
		dispatcher.Wait()
		assert.True(t, dispatcher.IsClosed())
		assert.ErrorIs(t, dispatcher.Submit(func() {}), gerrors.ErrDispatcherClosed)
	})
	t.Run("With reference counting", func(t *testing.T) {
		dispatcher, err := NewDispatcher(WithWorkers(3), WithBatchSize(4), WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		assert.Equal(t, 3, dispatcher.Workers())
		assert.Equal(t, 4, dispatcher.BatchSize())

		spawner, err := NewPoolSpawner(dispatcher)
		require.NoError(t, err)
		assert.Same(t, dispatcher, spawner.Dispatcher())
		assert.EqualValues(t, 2, dispatcher.Refs())

		cell, err := Spawn[counterMessage](spawner, &counter{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, dispatcher.Refs())

		// the running actor keeps the pool alive after its owners let go
		spawner.Close()
		spawner.Close()
		dispatcher.Close()
		assert.EqualValues(t, 1, dispatcher.Refs())
		assert.False(t, dispatcher.IsClosed())

		_, err = Spawn[int](spawner, &recorder{})
		assert.ErrorIs(t, err, gerrors.ErrDispatcherClosed)

		reply := NewChannel[int](1)
		require.NoError(t, cell.Send(incBy(7)))
		require.NoError(t, cell.Send(getCount(reply.Ref())))
		assert.Equal(t, 7, <-reply.C())

		actor, err := cell.StopAndJoin()
		require.NoError(t, err)
		assert.Equal(t, 7, actor.count)

		dispatcher.Wait()
		assert.True(t, dispatcher.IsClosed())
		assert.Zero(t, dispatcher.Refs())

		_, err = NewPoolSpawner(dispatcher)
		assert.ErrorIs(t, err, gerrors.ErrDispatcherClosed)
	})
	t.Run("With a nil dispatcher", func(t *testing.T) {
		_, err := NewPoolSpawner(nil)
		assert.ErrorIs(t, err, gerrors.ErrDispatcherClosed)
	})
	t.Run("With jobs submitting jobs", func(t *testing.T) {
		dispatcher, err := NewDispatcher(WithWorkers(1))
		require.NoError(t, err)

		done := make(chan int, 1)
		var step func(n int)
		step = func(n int) {
			if n == 5 {
				done <- n
				return
			}
			assert.NoError(t, dispatcher.Submit(func() { step(n + 1) }))
		}
		require.NoError(t, dispatcher.Submit(func() { step(0) }))
		assert.Equal(t, 5, <-done)

		dispatcher.Close()
		dispatcher.Wait()
	})
}
