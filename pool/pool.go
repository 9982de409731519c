// Package pool provides fixed-capacity, tick-scoped recycle allocators for the
// short-lived math and collision objects the simulation creates every frame.
//
// A Pool hands out zeroed objects until Reset is called. Reset invalidates
// everything rented since the previous Reset; pointers obtained from Rent must
// not be kept across it. Handles obtained from RentHandle are epoch-stamped so
// a stale handle is detected instead of silently aliasing a recycled slot.
//
// Pools are not safe for concurrent use.
package pool

import "errors"

// ErrStaleHandle is returned by Get when the handle was rented before the
// most recent Reset.
var ErrStaleHandle = errors.New("pool: stale handle")

// Handle identifies a rented object for the lifetime of one epoch.
type Handle struct {
	epoch uint32
	index int32
}

// Valid reports whether h was ever issued. The zero Handle is never valid.
func (h Handle) Valid() bool {
	return h.epoch != 0
}

// Stats is a point-in-time view of pool occupancy.
type Stats struct {
	Name      string `json:"name"`
	Len       int    `json:"len"`
	Cap       int    `json:"cap"`
	Overflow  int    `json:"overflow"`
	HighWater int    `json:"highWater"`
}

// Pool is a fixed array of T plus a cursor.
type Pool[T any] struct {
	name      string
	items     []T
	cursor    int
	epoch     uint32
	overflow  []*T
	highWater int
}

// New creates a pool holding capacity preallocated objects. A negative
// capacity is treated as zero, in which case every Rent allocates.
func New[T any](name string, capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		name:  name,
		items: make([]T, capacity),
		epoch: 1,
	}
}

// Rent returns a zeroed object. Past capacity it falls back to a fresh heap
// allocation, which is counted as overflow until the next Reset.
func (p *Pool[T]) Rent() *T {
	if p.cursor < len(p.items) {
		obj := &p.items[p.cursor]
		var zero T
		*obj = zero
		p.cursor++
		if p.cursor > p.highWater {
			p.highWater = p.cursor
		}
		return obj
	}
	obj := new(T)
	p.overflow = append(p.overflow, obj)
	return obj
}

// RentHandle rents an object and returns a handle to it instead of a pointer.
func (p *Pool[T]) RentHandle() Handle {
	if p.cursor < len(p.items) {
		idx := p.cursor
		p.Rent()
		return Handle{epoch: p.epoch, index: int32(idx)}
	}
	p.Rent()
	return Handle{epoch: p.epoch, index: int32(len(p.items) + len(p.overflow) - 1)}
}

// Get resolves a handle rented during the current epoch.
func (p *Pool[T]) Get(h Handle) (*T, error) {
	if h.epoch != p.epoch {
		return nil, ErrStaleHandle
	}
	idx := int(h.index)
	if idx < len(p.items) {
		if idx >= p.cursor {
			return nil, ErrStaleHandle
		}
		return &p.items[idx], nil
	}
	idx -= len(p.items)
	if idx < 0 || idx >= len(p.overflow) {
		return nil, ErrStaleHandle
	}
	return p.overflow[idx], nil
}

// Reset rewinds the cursor and drops overflow allocations. Every object and
// handle rented before the call is invalid afterwards.
func (p *Pool[T]) Reset() {
	p.cursor = 0
	for i := range p.overflow {
		p.overflow[i] = nil
	}
	p.overflow = p.overflow[:0]
	p.epoch++
	if p.epoch == 0 {
		p.epoch = 1
	}
}

// Name returns the label the pool was created with.
func (p *Pool[T]) Name() string { return p.name }

// Len returns the number of pooled (non-overflow) objects rented this epoch.
func (p *Pool[T]) Len() int { return p.cursor }

// Cap returns the number of preallocated objects.
func (p *Pool[T]) Cap() int { return len(p.items) }

// Overflow returns the number of heap allocations made this epoch.
func (p *Pool[T]) Overflow() int { return len(p.overflow) }

// HighWater returns the largest pooled occupancy seen since creation.
func (p *Pool[T]) HighWater() int { return p.highWater }

// Epoch returns the current reset generation.
func (p *Pool[T]) Epoch() uint32 { return p.epoch }

// Stats returns the current occupancy counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Name:      p.name,
		Len:       p.cursor,
		Cap:       len(p.items),
		Overflow:  len(p.overflow),
		HighWater: p.highWater,
	}
}
