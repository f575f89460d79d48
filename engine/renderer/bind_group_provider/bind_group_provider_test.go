package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("lights", WithLocation(1, 3), WithSize(80))
	assert.Equal(t, "lights", p.Label())
	assert.Equal(t, uint32(1), p.Group())
	assert.Equal(t, uint32(3), p.Binding())
	assert.Equal(t, uint64(80), p.Size())
	assert.Nil(t, p.Buffer())

	// Releasing a provider without GPU resources is a no-op.
	p.Release()
	assert.Nil(t, p.Buffer())
}
