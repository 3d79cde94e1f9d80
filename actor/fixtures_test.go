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
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

// counterMessage is either an increment or a request for the current count
type counterMessage struct {
	inc   int
	reply ActorRef[int]
}

func incBy(n int) counterMessage {
	return counterMessage{inc: n}
}

func getCount(reply ActorRef[int]) counterMessage {
	return counterMessage{reply: reply}
}

// counter adds increments and answers count requests
type counter struct {
	count int
}

func (c *counter) Process(message counterMessage) {
	if !message.reply.IsDead() {
		_ = message.reply.Send(c.count)
		return
	}
	c.count += message.inc
}

// recorder keeps every message in arrival order
type recorder struct {
	received []int
}

func (r *recorder) Process(message int) {
	r.received = append(r.received, message)
}

// forwarder relays every message to the next actor
type forwarder struct {
	next ActorRef[int]
}

func (f *forwarder) Process(message int) {
	_ = f.next.Send(message)
}

// exclusive detects overlapping Process calls
type exclusive struct {
	inFlight   *atomic.Int32
	overlapped *atomic.Bool
	processed  int
}

func newExclusive() *exclusive {
	return &exclusive{
		inFlight:   atomic.NewInt32(0),
		overlapped: atomic.NewBool(false),
	}
}

func (e *exclusive) Process(int) {
	if e.inFlight.Inc() > 1 {
		e.overlapped.Store(true)
	}
	runtime.Gosched()
	e.processed++
	e.inFlight.Dec()
}

// panicker panics on negative messages
type panicker struct {
	sum int
}

func (p *panicker) Process(message int) {
	if message < 0 {
		panic("negative message")
	}
	p.sum += message
}

// gate blocks Process until released
type gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
	count   int
}

func newGate() *gate {
	return &gate{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gate) Process(int) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	g.count++
}
