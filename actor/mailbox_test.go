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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/kolloch/actors/errors"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO order", func(t *testing.T) {
		mailbox := NewUnboundedMailbox[int]()
		for i := range 100 {
			require.NoError(t, mailbox.Enqueue(i))
		}
		assert.EqualValues(t, 100, mailbox.Len())

		for i := range 100 {
			item, ok := mailbox.Dequeue()
			require.True(t, ok)
			assert.Equal(t, i, item)
		}
		assert.True(t, mailbox.IsEmpty())

		_, ok := mailbox.Dequeue()
		assert.False(t, ok)
		mailbox.Dispose()
	})
	t.Run("With Receive waiting for an item", func(t *testing.T) {
		mailbox := NewUnboundedMailbox[string]()
		received := make(chan string, 1)
		go func() {
			item, err := mailbox.Receive()
			if err == nil {
				received <- item
			}
			close(received)
		}()

		time.Sleep(20 * time.Millisecond)
		require.NoError(t, mailbox.Enqueue("hello"))
		assert.Equal(t, "hello", <-received)
		mailbox.Dispose()
	})
	t.Run("With Dispose releasing Receive", func(t *testing.T) {
		mailbox := NewUnboundedMailbox[int]()
		errc := make(chan error, 1)
		go func() {
			_, err := mailbox.Receive()
			errc <- err
		}()

		time.Sleep(20 * time.Millisecond)
		mailbox.Dispose()
		assert.ErrorIs(t, <-errc, gerrors.ErrUnreachable)
		assert.ErrorIs(t, mailbox.Enqueue(1), gerrors.ErrUnreachable)
	})
	t.Run("With multiple producers", func(t *testing.T) {
		producers := 4
		perProducer := 250
		mailbox := NewUnboundedMailbox[int]()

		var wg sync.WaitGroup
		wg.Add(producers)
		for p := range producers {
			go func() {
				defer wg.Done()
				for i := range perProducer {
					_ = mailbox.Enqueue(p*perProducer + i)
				}
			}()
		}
		wg.Wait()

		// items of one producer come out in the order they went in
		last := make(map[int]int)
		for range producers * perProducer {
			item, ok := mailbox.Dequeue()
			require.True(t, ok)
			producer := item / perProducer
			if previous, seen := last[producer]; seen {
				assert.Greater(t, item, previous)
			}
			last[producer] = item
		}
		assert.True(t, mailbox.IsEmpty())
		mailbox.Dispose()
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With a full mailbox", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](2)
		assert.EqualValues(t, 2, mailbox.Cap())

		require.NoError(t, mailbox.Enqueue(1))
		require.NoError(t, mailbox.Enqueue(2))
		assert.ErrorIs(t, mailbox.Enqueue(3), gerrors.ErrMailboxFull)
		assert.EqualValues(t, 2, mailbox.Len())

		item, ok := mailbox.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 1, item)

		require.NoError(t, mailbox.Enqueue(3))
		item, err := mailbox.Receive()
		require.NoError(t, err)
		assert.Equal(t, 2, item)
		item, ok = mailbox.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 3, item)
		assert.True(t, mailbox.IsEmpty())
		mailbox.Dispose()
	})
	t.Run("With an invalid capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](0)
		assert.EqualValues(t, 1, mailbox.Cap())
		require.NoError(t, mailbox.Enqueue(1))
		assert.ErrorIs(t, mailbox.Enqueue(2), gerrors.ErrMailboxFull)
		mailbox.Dispose()
	})
	t.Run("With concurrent producers never exceeding the capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](10)
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			accepted int
		)
		wg.Add(8)
		for range 8 {
			go func() {
				defer wg.Done()
				for i := range 10 {
					if mailbox.Enqueue(i) == nil {
						mu.Lock()
						accepted++
						mu.Unlock()
					}
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 10, accepted)
		assert.EqualValues(t, 10, mailbox.Len())
		mailbox.Dispose()
	})
	t.Run("With Dispose", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](4)
		require.NoError(t, mailbox.Enqueue(1))
		mailbox.Dispose()
		assert.ErrorIs(t, mailbox.Enqueue(2), gerrors.ErrUnreachable)
		_, err := mailbox.Receive()
		assert.ErrorIs(t, err, gerrors.ErrUnreachable)
	})
}

func TestNewMailbox(t *testing.T) {
	unbounded := newMailbox[int](newSpawnConfig())
	assert.IsType(t, &UnboundedMailbox[int]{}, unbounded)
	unbounded.Dispose()

	bounded := newMailbox[int](newSpawnConfig(WithBoundedMailbox(8)))
	require.IsType(t, &BoundedMailbox[int]{}, bounded)
	assert.EqualValues(t, 8, bounded.(*BoundedMailbox[int]).Cap())
	bounded.Dispose()
}
