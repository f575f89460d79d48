package common

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestMul4Identity(t *testing.T) {
	m := Perspective(1.2, 16.0/9.0, 0.1, 100)
	assert.Equal(t, m, Mul4(Identity(), m))
	assert.Equal(t, m, Mul4(m, Identity()))
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective(1.0, 1.0, 1, 10)
	assert.Equal(t, float32(-1), m[11])
	assert.Equal(t, float32(0), m[15])
	assert.InDelta(t, 10.0/(1.0-10.0), m[10], 1e-6)
}

func TestLookAtTranslatesEye(t *testing.T) {
	m := LookAt(math32.Vec3(0, 0, 5), math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0))
	assert.InDelta(t, -5, m[14], 1e-6)
	assert.InDelta(t, 1, m[0], 1e-6)
	assert.InDelta(t, 1, m[5], 1e-6)
	assert.InDelta(t, 1, m[10], 1e-6)
}

func TestNormalize3(t *testing.T) {
	n := Normalize3(math32.Vec3(0, -3, 4))
	assert.InDelta(t, 0, n.X, 1e-6)
	assert.InDelta(t, -0.6, n.Y, 1e-6)
	assert.InDelta(t, 0.8, n.Z, 1e-6)
	assert.Equal(t, math32.Vector3{}, Normalize3(math32.Vector3{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
