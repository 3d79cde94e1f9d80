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

	"github.com/google/uuid"

	gerrors "github.com/kolloch/actors/errors"
)

// Channel exposes a buffered Go channel as a message destination.
//
// It lets code that is not an actor receive messages, typically replies:
// put Channel.Ref() in a request and read the answer from Channel.C().
type Channel[M any] struct {
	id       string
	messages chan M
	mu       sync.RWMutex
	closed   bool
}

// NewChannel creates a Channel buffering up to capacity messages.
// A capacity lower than one is treated as one.
func NewChannel[M any](capacity int) *Channel[M] {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel[M]{
		id:       uuid.NewString(),
		messages: make(chan M, capacity),
	}
}

// Ref returns a reference sending to the channel.
// A send fails with ErrMailboxFull when the buffer is full and with
// ErrUnreachable once the channel is closed.
func (c *Channel[M]) Ref() ActorRef[M] {
	return ActorRef[M]{target: c}
}

// C returns the receiving side of the channel
func (c *Channel[M]) C() <-chan M {
	return c.messages
}

// Close closes the channel. Buffered messages can still be received.
// It's safe to call Close multiple times.
func (c *Channel[M]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.messages)
	}
}

// String returns the string representation of the channel
func (c *Channel[M]) String() string {
	return "channel/" + c.id
}

func (c *Channel[M]) send(message M) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return newSendError(gerrors.ErrUnreachable, message)
	}

	select {
	case c.messages <- message:
		return nil
	default:
		return newSendError(gerrors.ErrMailboxFull, message)
	}
}
