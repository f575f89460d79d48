package renderer

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
)

type foreignHandle struct{}

func (foreignHandle) Label() string { return "foreign" }

func newTestContext() *wgpuContext {
	return &wgpuContext{programs: make(map[shader.Program]map[uint32]*programGroup)}
}

func TestWGPUContextRejectsForeignHandles(t *testing.T) {
	c := newTestContext()
	assert.True(t, errors.Is(c.WriteUniformBlock(foreignHandle{}, []byte{1}), ErrForeignHandle))
	assert.True(t, errors.Is(c.BindUniformBlock(1, foreignHandle{}), ErrForeignHandle))
}

func TestWGPUContextSkipsReleasedBuffers(t *testing.T) {
	c := newTestContext()
	p := bind_group_provider.NewBindGroupProvider("released", bind_group_provider.WithSize(16))
	// No buffer: the write is dropped without touching the queue.
	assert.NoError(t, c.WriteUniformBlock(p, make([]byte, 16)))
}

func TestWGPUContextUnboundLookups(t *testing.T) {
	c := newTestContext()
	assert.Nil(t, c.BindGroup(7, 0))
	assert.Nil(t, c.BindGroupLayout(7, 0))

	p := bind_group_provider.NewBindGroupProvider("unallocated", bind_group_provider.WithLocation(0, 1))
	assert.Error(t, c.BindUniformBlock(7, p))

	c.Release()
	assert.Empty(t, c.programs)
}
