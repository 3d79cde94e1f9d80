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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMailboxFull is returned when a bounded mailbox cannot accept another message.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrUnreachable is returned when the target actor no longer accepts messages:
	// it has been stopped, its worker exited or its mailbox has been disposed.
	ErrUnreachable = errors.New("actor is unreachable")

	// ErrUnknown is returned for failures that are neither ErrMailboxFull nor ErrUnreachable,
	// for instance when the actor panicked while processing a message.
	ErrUnknown = errors.New("unknown failure")

	// ErrAlreadyStopped is returned when StopAndJoin is called on an actor that is stopping or stopped.
	ErrAlreadyStopped = errors.New("actor already stopped")

	// ErrDispatcherClosed is returned when work is submitted to a dispatcher that has been torn down.
	ErrDispatcherClosed = errors.New("dispatcher is closed")

	// ErrUndefinedSpawner is returned when spawning with a nil spawner.
	ErrUndefinedSpawner = errors.New("spawner is not defined")

	// ErrPoolNotStarted is returned when submitting work to a worker pool that has not been started.
	ErrPoolNotStarted = errors.New("worker pool must be started first")

	// ErrPoolStopped is returned when submitting work to a worker pool that has been stopped.
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// NewErrUnknown wraps a base error with ErrUnknown.
func NewErrUnknown(err error) error {
	return errors.Join(ErrUnknown, err)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}

// Recovered converts the value returned by recover into a PanicError.
func Recovered(r any) *PanicError {
	switch v := r.(type) {
	case *PanicError:
		return v
	case error:
		return NewPanicError(v)
	default:
		return NewPanicError(fmt.Errorf("%v", v))
	}
}
