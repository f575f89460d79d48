package material

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSource(t *testing.T) {
	m, err := FromSource("lit", 3, shader.SceneBlocksSource)
	require.NoError(t, err)
	assert.Equal(t, "lit", m.Name())

	info := m.ProgramInfo()
	assert.Equal(t, shader.Program(3), info.Program)
	_, ok := info.Layout.Block("Lights")
	assert.True(t, ok)
}

func TestFromSourceReflectionError(t *testing.T) {
	_, err := FromSource("broken", 1, "fn main() {}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shader.ErrNoUniformBlocks))
}

func TestMaterialsCompareByIdentity(t *testing.T) {
	a := NewMaterial(WithName("same"), WithProgram(1))
	b := NewMaterial(WithName("same"), WithProgram(1))
	assert.False(t, a == b)

	seen := map[Material]int{a: 1}
	_, ok := seen[b]
	assert.False(t, ok)
}
