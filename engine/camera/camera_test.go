package camera

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, math32.Vec3(0, 0, 5), c.Position())
	assert.Equal(t, math32.Vec3(0, 0, 0), c.Target())
	assert.Equal(t, math32.Vec3(0, 1, 0), c.Up())
	assert.InDelta(t, math.Pi/4, c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())

	view := c.ViewMatrix()
	assert.Equal(t, float32(1), view[0])
	assert.Equal(t, float32(1), view[5])
	assert.Equal(t, float32(1), view[10])
	assert.Equal(t, float32(-5), view[14])

	assert.Equal(t, common.Perspective(c.Fov(), 1, 0.1, 100), c.ProjectionMatrix())
	assert.Equal(t, common.Mul4(c.ProjectionMatrix(), view), c.ViewProjectionMatrix())
}

func TestCameraOptions(t *testing.T) {
	c := NewCamera(
		WithPosition(1, 2, 3),
		WithTarget(1, 2, 0),
		WithUp(0, 1, 0),
		WithFov(1),
		WithAspect(2),
		WithClipPlanes(1, 10),
	)
	assert.Equal(t, math32.Vec3(1, 2, 3), c.Position())
	assert.Equal(t, math32.Vec3(1, 2, 0), c.Target())
	assert.Equal(t, common.Perspective(1, 2, 1, 10), c.ProjectionMatrix())
	assert.Equal(t, common.LookAt(c.Position(), c.Target(), c.Up()), c.ViewMatrix())
}

func TestCameraSettersRecomputeMatrices(t *testing.T) {
	c := NewCamera()
	proj := c.ProjectionMatrix()
	view := c.ViewMatrix()

	c.SetAspect(16.0 / 9.0)
	assert.NotEqual(t, proj, c.ProjectionMatrix())
	assert.Equal(t, view, c.ViewMatrix())

	c.SetPosition(math32.Vec3(0, 0, 10))
	assert.Equal(t, float32(-10), c.ViewMatrix()[14])

	c.SetTarget(math32.Vec3(0, 0, 20))
	assert.Equal(t, float32(-1), c.ViewMatrix()[10])

	c.SetUp(math32.Vec3(0, 0, 1))
	c.SetUp(math32.Vec3(0, 1, 0))
	c.SetFov(0.5)
	c.SetNear(0.5)
	c.SetFar(50)
	assert.Equal(t, common.Perspective(0.5, 16.0/9.0, 0.5, 50), c.ProjectionMatrix())
}
