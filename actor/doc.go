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

// Package actor provides a minimal in-process actor runtime.
//
// An actor is a value implementing Actor[M]. Once spawned, it is owned by a
// cell that calls its Process method with one message at a time, so the
// actor state needs no locking. Other goroutines talk to it through an
// ActorRef[M], which never blocks on Send.
//
// Two execution strategies are available:
//
//   - DedicatedSpawner gives every actor its own goroutine blocking on the
//     mailbox. Good for a few long-lived actors.
//   - PoolSpawner multiplexes many actors over the bounded worker pool of a
//     Dispatcher. Each actor processes at most a batch of messages per job
//     before yielding its worker to other actors.
//
// Stopping is synchronous: StopAndJoin processes every message accepted
// before the call and returns the actor with its final state.
//
//	dispatcher, _ := actor.NewDispatcher(actor.WithWorkers(4))
//	defer dispatcher.Close()
//	spawner, _ := actor.NewPoolSpawner(dispatcher)
//	defer spawner.Close()
//
//	cell, _ := actor.Spawn[int](spawner, &Counter{})
//	_ = cell.Ref().Send(1)
//	counter, _ := cell.StopAndJoin()
package actor
