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

package bench

import (
	"errors"
	"sync"

	"github.com/kolloch/actors/actor"
	gerrors "github.com/kolloch/actors/errors"
)

// Counter is the actor used by the benchmarks.
// It signals the wait group for every message.
type Counter struct {
	Wg    *sync.WaitGroup
	Count int
}

// Process handles one message
func (c *Counter) Process(int) {
	c.Count++
	c.Wg.Done()
}

// Benchmark spreads messages over a set of actors
type Benchmark struct {
	// actors defines the number of actors receiving messages
	actors  int
	spawner actor.Spawner
	cells   []actor.Cell[int, *Counter]
	wg      *sync.WaitGroup
}

// NewBenchmark creates a Benchmark spawning its actors with spawner
func NewBenchmark(spawner actor.Spawner, actors int) *Benchmark {
	return &Benchmark{
		actors:  actors,
		spawner: spawner,
		wg:      new(sync.WaitGroup),
	}
}

// Start spawns the actors
func (b *Benchmark) Start() error {
	for range b.actors {
		cell, err := actor.Spawn[int](b.spawner, &Counter{Wg: b.wg})
		if err != nil {
			return err
		}
		b.cells = append(b.cells, cell)
	}
	return nil
}

// Send sends count messages round robin and waits until they are processed.
// Sends rejected with ErrMailboxFull are retried.
func (b *Benchmark) Send(count int) error {
	b.wg.Add(count)
	for i := range count {
		ref := b.cells[i%len(b.cells)].Ref()
		for {
			err := ref.Send(i)
			if err == nil {
				break
			}
			if !errors.Is(err, gerrors.ErrMailboxFull) {
				b.wg.Add(-(count - i))
				return err
			}
		}
	}
	b.wg.Wait()
	return nil
}

// Stop stops the actors and returns the number of processed messages
func (b *Benchmark) Stop() (int, error) {
	var (
		total int
		errs  []error
	)
	for _, cell := range b.cells {
		counter, err := cell.StopAndJoin()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total += counter.Count
	}
	b.cells = nil
	return total, errors.Join(errs...)
}
