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

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - Exactly one consumer at a time calls Dequeue or Receive. Cells guarantee
//     this either with their single worker goroutine or with the exclusive
//     section held by the pool job.
//   - Items are delivered in FIFO order with respect to each producer.
//
// Blocking behavior
//   - Enqueue never blocks. Bounded implementations return ErrMailboxFull
//     when full.
//   - Dequeue never blocks and reports false when the mailbox is empty.
//   - Receive blocks until an item is available or the mailbox is disposed.
//
// Resource management
//   - Dispose drops the remaining items and unblocks Receive. After Dispose,
//     Enqueue and Receive fail with ErrUnreachable.
type Mailbox[T any] interface {
	// Enqueue pushes an item into the mailbox.
	Enqueue(item T) error
	// Dequeue fetches the next item without blocking.
	// It reports false when the mailbox is empty or disposed.
	Dequeue() (T, bool)
	// Receive fetches the next item, waiting for one when the mailbox is empty.
	Receive() (T, error)
	// IsEmpty reports whether the mailbox currently has no items.
	// This is a best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of items in the mailbox.
	Len() int64
	// Dispose releases the mailbox resources and unblocks Receive.
	Dispose()
}

// newMailbox creates the mailbox described by the spawn configuration
func newMailbox[T any](config *spawnConfig) Mailbox[T] {
	if config.capacity > 0 {
		return NewBoundedMailbox[T](config.capacity)
	}
	return NewUnboundedMailbox[T]()
}
