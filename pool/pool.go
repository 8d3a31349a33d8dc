// Package pool recycles the presentation objects that stand behind board
// occupants. Handles are board.Occupant values, so a Pool can be handed to a
// board.Grid as its Releaser.
package pool

import (
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfit/board"
)

// Pool hands out instances of T under opaque occupant handles and takes them
// back when the board clears their cells. It is not safe for concurrent use.
type Pool[T any] struct {
	factory func() T
	maxIdle int

	idle []T
	live *intmap.Map[board.Occupant, T]
	next board.Occupant
}

// New creates a pool that builds instances with factory and keeps at most
// maxIdle released instances for reuse. A negative maxIdle means no cap.
func New[T any](factory func() T, maxIdle int) *Pool[T] {
	return &Pool[T]{
		factory: factory,
		maxIdle: maxIdle,
		live:    intmap.New[board.Occupant, T](64),
	}
}

// Preload fills the idle list with up to n fresh instances.
func (p *Pool[T]) Preload(n int) {
	for range n {
		if !p.hasRoom() {
			return
		}
		p.idle = append(p.idle, p.factory())
	}
}

// Acquire returns a new handle and its instance, reusing an idle instance when
// one is available. Handles start at 1 and are never reused.
func (p *Pool[T]) Acquire() (board.Occupant, T) {
	var v T
	if n := len(p.idle); n > 0 {
		v = p.idle[n-1]
		var zero T
		p.idle[n-1] = zero
		p.idle = p.idle[:n-1]
	} else {
		v = p.factory()
	}

	p.next++
	p.live.Put(p.next, v)
	return p.next, v
}

// Get returns the instance behind a live handle.
func (p *Pool[T]) Get(o board.Occupant) (T, bool) {
	return p.live.Get(o)
}

// Release returns the instance behind o to the idle list. Unknown or already
// released handles are ignored.
func (p *Pool[T]) Release(o board.Occupant) {
	v, ok := p.live.Get(o)
	if !ok {
		return
	}
	p.live.Del(o)
	if p.hasRoom() {
		p.idle = append(p.idle, v)
	}
}

// Each calls fn for every live handle until fn returns false.
func (p *Pool[T]) Each(fn func(board.Occupant, T) bool) {
	p.live.ForEach(fn)
}

// Live returns the number of handed-out instances.
func (p *Pool[T]) Live() int { return p.live.Len() }

// Idle returns the number of instances waiting for reuse.
func (p *Pool[T]) Idle() int { return len(p.idle) }

// Clear forgets every live handle and drops the idle list.
func (p *Pool[T]) Clear() {
	p.live.Clear()
	clear(p.idle)
	p.idle = p.idle[:0]
}

func (p *Pool[T]) hasRoom() bool {
	return p.maxIdle < 0 || len(p.idle) < p.maxIdle
}

var _ board.Releaser = (*Pool[struct{}])(nil)
