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

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	gerrors "github.com/kolloch/actors/errors"
	"github.com/kolloch/actors/internal/metric"
	"github.com/kolloch/actors/log"
)

// Cell is the owner handle of a spawned actor.
//
// Ref returns the shareable reference; StopAndJoin ends the actor and gives
// its final state back. Only the owner should call StopAndJoin.
type Cell[M any, A Actor[M]] interface {
	// ID returns the identifier of the actor
	ID() string
	// Ref returns a reference that can be copied and sent around
	Ref() ActorRef[M]
	// Send delivers a message to the actor without blocking
	Send(message M) error
	// StopAndJoin processes the pending messages, stops the actor and
	// returns it
	StopAndJoin() (A, error)
	// String returns the string representation of the cell
	String() string
}

// Spawner decides how spawned actors are executed.
// The implementations are DedicatedSpawner and PoolSpawner.
type Spawner interface {
	// Strategy returns the name of the execution strategy
	Strategy() string
	spawner()
}

var (
	_ Spawner = (*DedicatedSpawner)(nil)
	_ Spawner = (*PoolSpawner)(nil)
)

// DedicatedSpawner starts one goroutine per spawned actor
type DedicatedSpawner struct {
	logger log.Logger
	metric *metric.CellMetric
}

// NewDedicatedSpawner creates a DedicatedSpawner.
// Only the logger and meter provider options apply.
func NewDedicatedSpawner(opts ...Option) (*DedicatedSpawner, error) {
	config := newConfig(opts...)
	cellMetric, err := config.cellMetric()
	if err != nil {
		return nil, err
	}
	return &DedicatedSpawner{
		logger: config.logger,
		metric: cellMetric,
	}, nil
}

// Strategy returns the name of the execution strategy
func (s *DedicatedSpawner) Strategy() string {
	return dedicatedStrategy
}

func (s *DedicatedSpawner) spawner() {}

// PoolSpawner runs its actors on the worker pool of a Dispatcher.
// All of them share the pool and the batch size of that Dispatcher.
type PoolSpawner struct {
	dispatcher *Dispatcher
	live       goset.Set[string]

	mu     sync.Mutex
	closed bool
}

// NewPoolSpawner creates a PoolSpawner holding a reference on the dispatcher.
// It fails with ErrDispatcherClosed when the dispatcher is torn down.
func NewPoolSpawner(dispatcher *Dispatcher) (*PoolSpawner, error) {
	if dispatcher == nil || !dispatcher.retain() {
		return nil, gerrors.ErrDispatcherClosed
	}
	return &PoolSpawner{
		dispatcher: dispatcher,
		live:       goset.NewSet[string](),
	}, nil
}

// Strategy returns the name of the execution strategy
func (s *PoolSpawner) Strategy() string {
	return pooledStrategy
}

func (s *PoolSpawner) spawner() {}

// Dispatcher returns the dispatcher the actors run on
func (s *PoolSpawner) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Live returns the identifiers of the actors that have not been stopped yet
func (s *PoolSpawner) Live() []string {
	return s.live.ToSlice()
}

// Close releases the spawner's reference on the dispatcher.
// Actors already spawned keep running until they are stopped.
// It's safe to call Close multiple times.
func (s *PoolSpawner) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if count := s.live.Cardinality(); count > 0 {
		s.dispatcher.logger.Warnf("pool spawner closed with %d running actors", count)
	}
	s.dispatcher.release()
}

// admit takes a dispatcher reference for a new cell
func (s *PoolSpawner) admit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.dispatcher.retain() {
		return gerrors.ErrDispatcherClosed
	}
	s.live.Add(id)
	return nil
}

// forget is called when a cell stops
func (s *PoolSpawner) forget(id string) {
	s.live.Remove(id)
}

// Spawn starts the actor with the given spawner and returns its cell.
//
// Go cannot infer M from the actor's methods, so callers name it:
//
//	cell, err := actor.Spawn[int](spawner, counter)
func Spawn[M any, A Actor[M]](spawner Spawner, actor A, opts ...SpawnOption) (Cell[M, A], error) {
	config := newSpawnConfig(opts...)
	id := config.id
	if id == "" {
		id = uuid.NewString()
	}

	switch s := spawner.(type) {
	case *DedicatedSpawner:
		if s == nil {
			return nil, gerrors.ErrUndefinedSpawner
		}
		cell := newDedicatedCell[M](actor, id, s.logger, s.metric, config)
		cell.logger.Debug("actor spawned")
		return cell, nil
	case *PoolSpawner:
		if s == nil {
			return nil, gerrors.ErrUndefinedSpawner
		}
		if err := s.admit(id); err != nil {
			return nil, err
		}
		d := s.dispatcher
		cell := newPooledCell[M](actor, id, d, d.logger, d.metric, config, s.forget)
		cell.logger.Debug("actor spawned")
		return cell, nil
	default:
		return nil, gerrors.ErrUndefinedSpawner
	}
}
