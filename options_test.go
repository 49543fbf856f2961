package bpool

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOptionsLoad(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 64, opts.Limit)
	err := opts.Load(map[string]interface{}{
		"limit":        8,
		"pre_allocate": 4,
		"initialize":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, opts.Limit)
	assert.Equal(t, 4, opts.PreAllocate)
	assert.True(t, opts.Initialize)
}

func TestOptionsLoadRejects(t *testing.T) {
	opts := DefaultOptions()
	assert.Error(t, opts.Load(map[string]interface{}{"limit": "lots"}))
	assert.Error(t, DefaultOptions().Load(map[string]interface{}{"limit": -1}))
	assert.Error(t, DefaultOptions().Load(map[string]interface{}{"pre_allocate": -2}))
}

func TestOptionsDump(t *testing.T) {
	out := DefaultOptions().Dump()
	assert.Contains(t, out, "options {")
	assert.Contains(t, out, "pre_allocate")
	assert.Contains(t, out, "64")
}

func TestNewFromOptions(t *testing.T) {
	opts := &Options{Limit: 2, PreAllocate: 3, Initialize: true}
	p := NewFromOptions[int](opts, Zero[int]{})
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Limit())

	s := NewSharedFromOptions[int](DefaultOptions(), FactoryFunc[int](func() int { return 1 }))
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 64, s.Limit())
	assert.Equal(t, 1, s.Pop())
}
