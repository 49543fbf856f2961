package bpool

import (
	"github.com/pkg/errors"
	"weak"
)

// ErrGuardConsumed is the panic value raised when a guard is used after its value was
// released or taken with IntoInner.
var ErrGuardConsumed = errors.New("guard value already consumed")

// Guard holds one value acquired from a SharedPool. The value goes back to the pool on
// Release unless IntoInner takes it first:
//
//	g := pool.PopGuarded()
//	defer g.Release()
//	buf := g.Value()
//
// The reference back to the pool is weak. If every handle on the pool has been dropped and
// collected, Release discards the value instead.
//
// A Guard belongs to a single goroutine.
type Guard[T any, F Factory[T]] struct {
	pool weak.Pointer[sharedState[T, F]]
	val  T
	held bool
}

func newGuard[T any, F Factory[T]](state *sharedState[T, F], v T) *Guard[T, F] {
	return &Guard[T, F]{pool: state.ref(), val: v, held: true}
}

// Value returns a pointer to the held value, valid until Release or IntoInner.
func (self *Guard[T, F]) Value() *T {
	self.mustHold()
	return &self.val
}

// IntoInner takes the value out of the guard. It will not be returned to the pool.
func (self *Guard[T, F]) IntoInner() T {
	self.mustHold()
	return self.take()
}

// Release returns the value to its pool, if the pool still exists. Only the first call on a
// held value does anything, so it is safe to defer alongside an explicit IntoInner.
func (self *Guard[T, F]) Release() {
	if self == nil || !self.held {
		return
	}
	v := self.take()
	if state := self.pool.Value(); state != nil {
		state.push(v)
	}
}

// Released reports whether the guard no longer holds a value.
func (self *Guard[T, F]) Released() bool {
	return !self.held
}

func (self *Guard[T, F]) take() T {
	var zero T
	v := self.val
	self.val = zero
	self.held = false
	return v
}

func (self *Guard[T, F]) mustHold() {
	if !self.held {
		panic(ErrGuardConsumed)
	}
}
