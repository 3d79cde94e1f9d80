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

	gerrors "github.com/kolloch/actors/errors"
)

// UnboundedMailbox is the default mailbox. It is a FIFO queue without
// capacity limit: Enqueue only fails once the mailbox is disposed.
//
// If producers outpace the consumer, memory usage grows without limit.
// Use BoundedMailbox when senders must be told to back off.
type UnboundedMailbox[T any] struct {
	underlying *gods.Queue
}

// enforce compilation error
var _ Mailbox[int] = (*UnboundedMailbox[int])(nil)

// NewUnboundedMailbox returns a new, initialized UnboundedMailbox.
func NewUnboundedMailbox[T any]() *UnboundedMailbox[T] {
	return &UnboundedMailbox[T]{
		underlying: gods.New(defaultMailboxHint),
	}
}

// Enqueue appends the item to the tail of the mailbox.
func (m *UnboundedMailbox[T]) Enqueue(item T) error {
	if err := m.underlying.Put(item); err != nil {
		return gerrors.ErrUnreachable
	}
	return nil
}

// Dequeue removes and returns the item at the head of the mailbox.
// It must only be called by the consumer.
func (m *UnboundedMailbox[T]) Dequeue() (T, bool) {
	var zero T
	if m.underlying.Empty() {
		return zero, false
	}

	items, err := m.underlying.Get(1)
	if err != nil || len(items) == 0 {
		return zero, false
	}

	item, _ := items[0].(T)
	return item, true
}

// Receive removes and returns the item at the head of the mailbox, waiting
// for one to be enqueued when the mailbox is empty.
func (m *UnboundedMailbox[T]) Receive() (T, error) {
	var zero T
	items, err := m.underlying.Get(1)
	if err != nil || len(items) == 0 {
		return zero, gerrors.ErrUnreachable
	}

	item, _ := items[0].(T)
	return item, nil
}

// IsEmpty reports whether the mailbox currently holds no items.
func (m *UnboundedMailbox[T]) IsEmpty() bool {
	return m.underlying.Empty()
}

// Len returns the number of items currently in the mailbox.
func (m *UnboundedMailbox[T]) Len() int64 {
	return m.underlying.Len()
}

// Dispose drops the queued items and wakes up a blocked Receive.
func (m *UnboundedMailbox[T]) Dispose() {
	m.underlying.Dispose()
}
