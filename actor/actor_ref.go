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

	gerrors "github.com/kolloch/actors/errors"
)

// target is implemented by every kind of message destination an ActorRef can
// wrap. The set is closed: dedicated cells, pooled cells, channels and the
// dead letter sink.
type target[M any] interface {
	fmt.Stringer
	send(message M) error
}

var (
	_ target[int] = (*DedicatedCell[int, ProcessFunc[int]])(nil)
	_ target[int] = (*PooledCell[int, ProcessFunc[int]])(nil)
	_ target[int] = (*Channel[int])(nil)
	_ target[int] = deadLetter[int]{}
)

// ActorRef is a handle for passing messages to an actor or another message
// processing entity, whatever its execution strategy.
//
// ActorRef has value semantics: copies refer to the same destination and
// are safe to use from any goroutine. The zero value is a dead reference.
type ActorRef[M any] struct {
	target target[M]
}

// DeadRef returns a reference that rejects every message with ErrUnreachable.
// It is handy as a default value or a test double.
func DeadRef[M any]() ActorRef[M] {
	return ActorRef[M]{target: deadLetter[M]{}}
}

// Send delivers the message to the referenced destination without blocking.
//
// On failure the returned error is a *SendError[M] holding the message;
// use errors.Is with ErrMailboxFull, ErrUnreachable or ErrUnknown to find out
// why and Undelivered to get the message back.
func (r ActorRef[M]) Send(message M) error {
	if r.target == nil {
		return newSendError(gerrors.ErrUnreachable, message)
	}
	return r.target.send(message)
}

// Clone returns a reference to the same destination
func (r ActorRef[M]) Clone() ActorRef[M] {
	return r
}

// IsDead reports whether the reference can never deliver a message
func (r ActorRef[M]) IsDead() bool {
	if r.target == nil {
		return true
	}
	_, dead := r.target.(deadLetter[M])
	return dead
}

// Equals reports whether both references point to the same destination
func (r ActorRef[M]) Equals(other ActorRef[M]) bool {
	if r.IsDead() || other.IsDead() {
		return r.IsDead() && other.IsDead()
	}
	return r.target == other.target
}

// String returns the string representation of the reference
func (r ActorRef[M]) String() string {
	if r.target == nil {
		return "ActorRef(dead)"
	}
	return fmt.Sprintf("ActorRef(%s)", r.target)
}

// deadLetter is the sink behind dead references
type deadLetter[M any] struct{}

func (deadLetter[M]) send(message M) error {
	return newSendError(gerrors.ErrUnreachable, message)
}

func (deadLetter[M]) String() string {
	return "dead"
}
