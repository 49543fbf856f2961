package bpool

// Factory produces a new value whenever a pool has no spare to hand out.
type Factory[T any] interface {
	New() T
}

// FactoryFunc adapts an ordinary function to Factory.
type FactoryFunc[T any] func() T

func (self FactoryFunc[T]) New() T {
	return self()
}

// Zero is the default factory. It produces the zero value of T.
type Zero[T any] struct{}

func (Zero[T]) New() T {
	var v T
	return v
}

// DynPool is a Pool whose factory is chosen at runtime and stored boxed behind the Factory
// interface.
type DynPool[T any] = Pool[T, Factory[T]]

// DynSharedPool is the shared form of DynPool.
type DynSharedPool[T any] = SharedPool[T, Factory[T]]
