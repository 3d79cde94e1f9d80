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
	gods "github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"

	gerrors "github.com/kolloch/actors/errors"
)

// BoundedMailbox is a FIFO mailbox holding at most capacity items.
//
// Enqueue never blocks: when the mailbox is full it fails with
// ErrMailboxFull and the caller keeps the message.
type BoundedMailbox[T any] struct {
	underlying *gods.Queue
	capacity   int64
	size       atomic.Int64
}

// enforce compilation error
var _ Mailbox[int] = (*BoundedMailbox[int])(nil)

// NewBoundedMailbox creates a bounded mailbox with the given capacity.
// A capacity lower than one is treated as one.
func NewBoundedMailbox[T any](capacity int) *BoundedMailbox[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedMailbox[T]{
		underlying: gods.New(int64(capacity)),
		capacity:   int64(capacity),
	}
}

// Enqueue inserts an item into the mailbox.
func (m *BoundedMailbox[T]) Enqueue(item T) error {
	if m.underlying.Disposed() {
		return gerrors.ErrUnreachable
	}

	// reserve a slot before publishing the item
	if m.size.Inc() > m.capacity {
		m.size.Dec()
		return gerrors.ErrMailboxFull
	}

	if err := m.underlying.Put(item); err != nil {
		m.size.Dec()
		return gerrors.ErrUnreachable
	}
	return nil
}

// Dequeue removes and returns the next item without blocking.
func (m *BoundedMailbox[T]) Dequeue() (T, bool) {
	var zero T
	if m.underlying.Empty() {
		return zero, false
	}

	items, err := m.underlying.Get(1)
	if err != nil || len(items) == 0 {
		return zero, false
	}

	m.size.Dec()
	item, _ := items[0].(T)
	return item, true
}

// Receive removes and returns the next item, waiting for one when empty.
func (m *BoundedMailbox[T]) Receive() (T, error) {
	var zero T
	items, err := m.underlying.Get(1)
	if err != nil || len(items) == 0 {
		return zero, gerrors.ErrUnreachable
	}

	m.size.Dec()
	item, _ := items[0].(T)
	return item, nil
}

// IsEmpty reports whether the mailbox currently has no items.
func (m *BoundedMailbox[T]) IsEmpty() bool {
	return m.underlying.Empty()
}

// Len returns the current number of items in the mailbox.
func (m *BoundedMailbox[T]) Len() int64 {
	return m.underlying.Len()
}

// Cap returns the capacity of the mailbox
func (m *BoundedMailbox[T]) Cap() int64 {
	return m.capacity
}

// Dispose drops the queued items and wakes up a blocked Receive.
func (m *BoundedMailbox[T]) Dispose() {
	m.underlying.Dispose()
}
