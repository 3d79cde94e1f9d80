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

package testkit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kolloch/actors/actor"
)

const (
	MessagesQueueMax int           = 1000
	DefaultTimeout   time.Duration = 3 * time.Second
	noMessageTimeout time.Duration = 100 * time.Millisecond
)

// Probe receives the messages sent to its reference and helps perform
// assertions on them when implementing unit tests with actors.
type Probe[M any] struct {
	pt      testing.TB
	channel *actor.Channel[M]
	last    M
}

// NewProbe creates a Probe buffering up to MessagesQueueMax messages.
// The probe is closed when the test ends.
func NewProbe[M any](t testing.TB) *Probe[M] {
	probe := &Probe[M]{
		pt:      t,
		channel: actor.NewChannel[M](MessagesQueueMax),
	}
	t.Cleanup(probe.Stop)
	return probe
}

// Ref returns the reference to pass to the actor under test
func (x *Probe[M]) Ref() actor.ActorRef[M] {
	return x.channel.Ref()
}

// ExpectMessage asserts that the next message is the expected one
func (x *Probe[M]) ExpectMessage(message M) {
	x.pt.Helper()
	x.expectMessage(DefaultTimeout, message)
}

// ExpectMessageWithin asserts that the next message is the expected one
// and arrives within a time duration
func (x *Probe[M]) ExpectMessageWithin(duration time.Duration, message M) {
	x.pt.Helper()
	x.expectMessage(duration, message)
}

// ExpectNoMessage asserts that no message arrives for a short while
func (x *Probe[M]) ExpectNoMessage() {
	x.pt.Helper()
	received, ok := x.receiveOne(noMessageTimeout)
	require.False(x.pt, ok, fmt.Sprintf("received unexpected message %v", received))
}

// ExpectAnyMessage asserts that a message arrives and returns it
func (x *Probe[M]) ExpectAnyMessage() M {
	x.pt.Helper()
	return x.ExpectAnyMessageWithin(DefaultTimeout)
}

// ExpectAnyMessageWithin asserts that a message arrives within a time
// duration and returns it
func (x *Probe[M]) ExpectAnyMessageWithin(duration time.Duration) M {
	x.pt.Helper()
	received, ok := x.receiveOne(duration)
	require.True(x.pt, ok, fmt.Sprintf("timeout (%v) during expectAnyMessage while waiting", duration))
	return received
}

// LastMessage returns the last message received by the probe
func (x *Probe[M]) LastMessage() M {
	return x.last
}

// Stop closes the probe. Further sends to its reference fail with
// ErrUnreachable.
func (x *Probe[M]) Stop() {
	x.channel.Close()
}

// receiveOne receives one message within a maximum time duration
func (x *Probe[M]) receiveOne(max time.Duration) (M, bool) {
	timer := time.NewTimer(max)
	defer timer.Stop()

	var zero M
	select {
	case received, ok := <-x.channel.C():
		if !ok {
			return zero, false
		}
		x.last = received
		return received, true
	case <-timer.C:
		return zero, false
	}
}

// expectMessage asserts the expectation of a message within a maximum time duration
func (x *Probe[M]) expectMessage(max time.Duration, message M) {
	x.pt.Helper()
	received, ok := x.receiveOne(max)
	require.True(x.pt, ok, fmt.Sprintf("timeout (%v) during expectMessage while waiting for %v", max, message))
	require.Equal(x.pt, message, received, fmt.Sprintf("expected %v, found %v", message, received))
}
