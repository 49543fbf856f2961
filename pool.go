package bpool

import (
	"fmt"
	"github.com/sirupsen/logrus"
)

// Pool is a single-owner bounded stack of spare values. It performs no locking; use
// SharedPool to share one between goroutines.
type Pool[T any, F Factory[T]] struct {
	spares  []T
	limit   int
	factory F
}

// New creates a pool retaining at most limit spares. Storage for preAllocate spares is
// reserved up front and, when initialize is set, filled with values from factory. The eager
// fill is allowed to exceed limit; limit only governs what Push accepts.
func New[T any, F Factory[T]](limit, preAllocate int, initialize bool, factory F) *Pool[T, F] {
	if limit < 0 {
		logrus.Warnf("negative limit [%d], retaining no spares", limit)
		limit = 0
	}
	if preAllocate < 0 {
		logrus.Warnf("negative pre-allocation [%d], ignoring", preAllocate)
		preAllocate = 0
	}
	p := &Pool[T, F]{
		spares:  make([]T, 0, preAllocate),
		limit:   limit,
		factory: factory,
	}
	if initialize {
		for i := 0; i < preAllocate; i++ {
			p.spares = append(p.spares, factory.New())
		}
		logrus.Debugf("initialized [%d] spares, limit [%d]", preAllocate, limit)
	}
	return p
}

// NewFunc creates a pool with a plain function as its factory.
func NewFunc[T any](limit, preAllocate int, initialize bool, factory func() T) *Pool[T, FactoryFunc[T]] {
	return New[T](limit, preAllocate, initialize, FactoryFunc[T](factory))
}

// NewDyn creates a pool whose factory is only known at runtime.
func NewDyn[T any](limit, preAllocate int, initialize bool, factory Factory[T]) *DynPool[T] {
	return New[T, Factory[T]](limit, preAllocate, initialize, factory)
}

// NewWithDefault creates an empty pool that constructs zero values on demand.
func NewWithDefault[T any](limit int) *Pool[T, Zero[T]] {
	return New[T](limit, 0, false, Zero[T]{})
}

// Pop returns the most recently pushed spare, or a new value from the factory when there is
// none. Pop never fails; a panicking factory panics through Pop.
func (self *Pool[T, F]) Pop() T {
	if v, ok := self.TryPop(); ok {
		return v
	}
	return self.factory.New()
}

// TryPop returns the most recently pushed spare without ever constructing one.
func (self *Pool[T, F]) TryPop() (T, bool) {
	var zero T
	n := len(self.spares)
	if n == 0 {
		return zero, false
	}
	v := self.spares[n-1]
	self.spares[n-1] = zero
	self.spares = self.spares[:n-1]
	return v, true
}

// Push retains v as a spare if the pool is below its limit. Otherwise v is silently dropped.
func (self *Pool[T, F]) Push(v T) {
	if len(self.spares) < self.limit {
		self.spares = append(self.spares, v)
	}
}

// Clear drops every spare. The limit is unchanged.
func (self *Pool[T, F]) Clear() {
	self.spares = nil
}

func (self *Pool[T, F]) Len() int {
	return len(self.spares)
}

func (self *Pool[T, F]) IsEmpty() bool {
	return len(self.spares) == 0
}

func (self *Pool[T, F]) Limit() int {
	return self.limit
}

func (self *Pool[T, F]) String() string {
	return fmt.Sprintf("Pool with limit %d and size %d", self.limit, len(self.spares))
}
