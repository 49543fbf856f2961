package bpool_test

import (
	"bytes"
	"fmt"
	"github.com/openziti/bpool"
)

func ExampleSharedPool_PopGuarded() {
	pool := bpool.NewSharedFunc(16, 0, false, func() *bytes.Buffer { return new(bytes.Buffer) })

	write := func(s string) string {
		g := pool.PopGuarded()
		defer g.Release()
		buf := *g.Value()
		buf.Reset()
		buf.WriteString(s)
		return buf.String()
	}
	fmt.Println(write("hello"))
	fmt.Println(pool.Len())

	kept := pool.PopGuarded().IntoInner()
	fmt.Println(kept.Len(), pool.Len())
	// Output:
	// hello
	// 1
	// 5 0
}

func ExamplePool() {
	p := bpool.NewWithDefault[int](3)
	for i := 0; i < 10; i++ {
		p.Push(i)
	}
	fmt.Println(p)
	fmt.Println(p.Pop(), p.Pop(), p.Pop(), p.Pop())
	// Output:
	// Pool with limit 3 and size 3
	// 2 1 0 0
}
