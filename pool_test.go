package bpool

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPoolPushNeverExceedsLimit(t *testing.T) {
	p := NewWithDefault[uint8](3)
	assert.True(t, p.IsEmpty())
	for i := 0; i < 10; i++ {
		p.Push(0)
		assert.LessOrEqual(t, p.Len(), 3)
	}
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3, p.Limit())
}

func TestPoolRoundTrip(t *testing.T) {
	p := NewWithDefault[uint8](3)
	for i := 0; i < 10; i++ {
		v := p.Pop()
		p.Push(v)
	}
	assert.Equal(t, 1, p.Len())

	p.Push(1)
	before := p.Len()
	p.Push(p.Pop())
	assert.Equal(t, before, p.Len())
}

func TestPoolPopConstructsWhenEmpty(t *testing.T) {
	calls := 0
	p := NewFunc(10, 0, false, func() int {
		calls++
		return 42
	})
	assert.Equal(t, 42, p.Pop())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, p.Len())
}

func TestPoolTryPopEmpty(t *testing.T) {
	calls := 0
	p := NewFunc(10, 0, false, func() int {
		calls++
		return 1
	})
	v, ok := p.TryPop()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, calls)
	assert.True(t, p.IsEmpty())
}

func TestPoolLifo(t *testing.T) {
	p := NewWithDefault[int](10)
	p.Push(1)
	p.Push(2)
	p.Push(3)
	v, ok := p.TryPop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, p.Pop())
	assert.Equal(t, 1, p.Pop())
	assert.Equal(t, 0, p.Pop())
}

func TestPoolPopReleasesSlot(t *testing.T) {
	p := NewWithDefault[*int](2)
	v := new(int)
	p.Push(v)
	assert.Same(t, v, p.Pop())
	assert.Nil(t, p.spares[:1][0])
}

func TestPoolEagerInitialize(t *testing.T) {
	calls := 0
	p := NewFunc(2, 5, true, func() int {
		calls++
		return calls
	})
	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, p.Len())

	p.Push(99)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 5, p.Pop())
}

func TestPoolReserveOnly(t *testing.T) {
	calls := 0
	p := NewFunc(8, 4, false, func() int {
		calls++
		return 0
	})
	assert.Equal(t, 0, calls)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 4, cap(p.spares))
}

func TestPoolClear(t *testing.T) {
	p := NewWithDefault[int](4)
	for i := 0; i < 4; i++ {
		p.Push(i)
	}
	p.Clear()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 4, p.Limit())
	p.Push(7)
	assert.Equal(t, 1, p.Len())
}

func TestPoolNegativeArguments(t *testing.T) {
	p := NewFunc(-1, -3, true, func() int { return 1 })
	assert.Equal(t, 0, p.Limit())
	assert.True(t, p.IsEmpty())
	p.Push(1)
	assert.True(t, p.IsEmpty())
}

func TestPoolZeroLimit(t *testing.T) {
	p := NewWithDefault[int](0)
	p.Push(1)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Pop())
}

func TestPoolDefaultFactory(t *testing.T) {
	type scratch struct {
		n    int
		name string
	}
	p := NewWithDefault[scratch](10)
	assert.True(t, p.IsEmpty())
	assert.Equal(t, scratch{}, p.Pop())
	assert.True(t, p.IsEmpty())
}

type counter struct {
	n int
}

func (self *counter) New() []byte {
	self.n++
	return make([]byte, 16)
}

func TestDynPoolMatchesStatic(t *testing.T) {
	static := New[[]byte](3, 0, false, &counter{})
	var f Factory[[]byte] = &counter{}
	dynamic := NewDyn(3, 0, false, f)

	exercise := func(pop func() []byte, push func([]byte), length func() int) []int {
		var lengths []int
		for i := 0; i < 10; i++ {
			push(pop())
			lengths = append(lengths, length())
		}
		for i := 0; i < 10; i++ {
			push(make([]byte, 16))
			lengths = append(lengths, length())
		}
		return lengths
	}
	assert.Equal(t,
		exercise(static.Pop, static.Push, static.Len),
		exercise(dynamic.Pop, dynamic.Push, dynamic.Len))
	assert.Equal(t, 3, dynamic.Len())
}

func TestDynPoolClosureFactory(t *testing.T) {
	number := uint8(100)
	p := NewDyn[uint8](10, 0, false, FactoryFunc[uint8](func() uint8 { return number }))
	assert.Equal(t, uint8(100), p.Pop())
	assert.True(t, p.IsEmpty())
}

func TestPoolFactoryPanicPropagates(t *testing.T) {
	p := NewFunc(1, 0, false, func() int { panic("no memory") })
	assert.PanicsWithValue(t, "no memory", func() { p.Pop() })
	assert.True(t, p.IsEmpty())
}

func TestPoolString(t *testing.T) {
	p := NewWithDefault[int](5)
	p.Push(1)
	assert.Equal(t, "Pool with limit 5 and size 1", p.String())
}

func benchmarkPoolPopPush(limit int, b *testing.B) {
	p := NewFunc(limit, limit, true, func() []byte { return make([]byte, 1024) })
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Push(p.Pop())
	}
}
func BenchmarkPoolPopPush_16(b *testing.B)   { benchmarkPoolPopPush(16, b) }
func BenchmarkPoolPopPush_1024(b *testing.B) { benchmarkPoolPopPush(1024, b) }
