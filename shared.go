package bpool

import (
	"fmt"
	"sync"
	"weak"
)

type sharedState[T any, F Factory[T]] struct {
	lock sync.Mutex
	pool *Pool[T, F]
}

// SharedPool is a handle on a lock-protected Pool. Copies of a SharedPool (see Clone) all
// operate on the same underlying pool, which lives for as long as any handle is reachable.
// Guards do not keep it alive.
type SharedPool[T any, F Factory[T]] struct {
	state *sharedState[T, F]
}

func NewShared[T any, F Factory[T]](limit, preAllocate int, initialize bool, factory F) SharedPool[T, F] {
	return wrap(New[T, F](limit, preAllocate, initialize, factory))
}

func NewSharedFunc[T any](limit, preAllocate int, initialize bool, factory func() T) SharedPool[T, FactoryFunc[T]] {
	return wrap(NewFunc(limit, preAllocate, initialize, factory))
}

func NewSharedDyn[T any](limit, preAllocate int, initialize bool, factory Factory[T]) DynSharedPool[T] {
	return wrap(NewDyn(limit, preAllocate, initialize, factory))
}

func NewSharedWithDefault[T any](limit int) SharedPool[T, Zero[T]] {
	return wrap(NewWithDefault[T](limit))
}

func wrap[T any, F Factory[T]](p *Pool[T, F]) SharedPool[T, F] {
	return SharedPool[T, F]{state: &sharedState[T, F]{pool: p}}
}

// Clone returns another handle on the same pool.
func (self SharedPool[T, F]) Clone() SharedPool[T, F] {
	return SharedPool[T, F]{state: self.state}
}

// Pop returns a spare or constructs a new value. The factory runs under the pool lock and must
// not call back into the pool.
func (self SharedPool[T, F]) Pop() T {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return self.state.pool.Pop()
}

func (self SharedPool[T, F]) TryPop() (T, bool) {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return self.state.pool.TryPop()
}

// PopGuarded pops a value wrapped in a Guard that returns it to this pool on Release.
func (self SharedPool[T, F]) PopGuarded() *Guard[T, F] {
	return newGuard(self.state, self.Pop())
}

// TryPopGuarded is PopGuarded without construction. It reports false when no spare exists.
func (self SharedPool[T, F]) TryPopGuarded() (*Guard[T, F], bool) {
	v, ok := self.TryPop()
	if !ok {
		return nil, false
	}
	return newGuard(self.state, v), true
}

func (self SharedPool[T, F]) Push(v T) {
	self.state.push(v)
}

func (self SharedPool[T, F]) Clear() {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	self.state.pool.Clear()
}

func (self SharedPool[T, F]) Len() int {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return self.state.pool.Len()
}

func (self SharedPool[T, F]) IsEmpty() bool {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return self.state.pool.IsEmpty()
}

func (self SharedPool[T, F]) Limit() int {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return self.state.pool.Limit()
}

func (self SharedPool[T, F]) String() string {
	self.state.lock.Lock()
	defer self.state.lock.Unlock()
	return fmt.Sprintf("SharedPool with limit %d and size %d", self.state.pool.Limit(), self.state.pool.Len())
}

func (self *sharedState[T, F]) push(v T) {
	self.lock.Lock()
	defer self.lock.Unlock()
	self.pool.Push(v)
}

func (self *sharedState[T, F]) ref() weak.Pointer[sharedState[T, F]] {
	return weak.Make(self)
}
