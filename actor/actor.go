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
	gerrors "github.com/kolloch/actors/errors"
)

// Actor processes the messages sent to it, one at a time.
//
// The runtime guarantees that Process is never called concurrently for the
// same actor, so implementations mutate their state without locking.
// Process may send messages to any ActorRef it holds, including one
// pointing back to itself, but it must not block indefinitely and must not
// stop its own cell.
type Actor[M any] interface {
	// Process handles one message and updates the actor state
	Process(message M)
}

// ProcessFunc adapts an ordinary function to the Actor interface.
// State captured by the closure is owned by the actor.
type ProcessFunc[M any] func(message M)

// enforce compilation error
var _ Actor[int] = ProcessFunc[int](nil)

// Process calls f(message)
func (f ProcessFunc[M]) Process(message M) {
	f(message)
}

// invoke hands one message to the actor, turning a panic into a PanicError
func invoke[M any, A Actor[M]](actor A, message M) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gerrors.Recovered(r)
		}
	}()

	actor.Process(message)
	return nil
}
