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
	"errors"
	"fmt"

	gerrors "github.com/kolloch/actors/errors"
)

// SendError is returned when a message cannot be delivered.
// It hands the undelivered message back to the caller, who decides whether
// to retry, redirect or drop it.
//
// Reason matches, with errors.Is, exactly one of ErrMailboxFull,
// ErrUnreachable or ErrUnknown.
type SendError[M any] struct {
	// Reason explains why the message was rejected
	Reason error
	// Message is the rejected message, unchanged
	Message M
}

// enforce compilation error
var _ error = (*SendError[int])(nil)

func newSendError[M any](reason error, message M) *SendError[M] {
	return &SendError[M]{
		Reason:  reason,
		Message: message,
	}
}

// Error implements the standard error interface
func (e *SendError[M]) Error() string {
	return fmt.Sprintf("send failed: %v", e.Reason)
}

// Unwrap returns the reason of the failure
func (e *SendError[M]) Unwrap() error {
	return e.Reason
}

// Undelivered extracts the rejected message from an error returned by Send.
// It reports false when err does not carry a message of type M.
func Undelivered[M any](err error) (M, bool) {
	var sendErr *SendError[M]
	if errors.As(err, &sendErr) {
		return sendErr.Message, true
	}
	var zero M
	return zero, false
}

// reasonLabel returns the short name of a send failure reason
func reasonLabel(reason error) string {
	switch {
	case errors.Is(reason, gerrors.ErrMailboxFull):
		return "full"
	case errors.Is(reason, gerrors.ErrUnreachable):
		return "unreachable"
	default:
		return "unknown"
	}
}
