package common

import (
	"math"

	"cogentcore.org/core/math32"
)

// Identity returns the 4x4 identity matrix in column-major order.
//
// Returns:
//   - math32.Matrix4: the identity matrix
func Identity() math32.Matrix4 {
	var m math32.Matrix4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul4 multiplies two 4x4 column-major matrices.
// Result: a * b
//
// Parameters:
//   - a: left-hand matrix
//   - b: right-hand matrix
//
// Returns:
//   - math32.Matrix4: the product matrix
func Mul4(a, b math32.Matrix4) math32.Matrix4 {
	var out math32.Matrix4
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Perspective creates a perspective projection matrix mapping depth to the
// WebGPU clip space range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - math32.Matrix4: the projection matrix
func Perspective(fovY, aspect, near, far float32) math32.Matrix4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	out := Identity()

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
	return out
}

// LookAt creates a view matrix that transforms world coordinates into the
// space of an eye positioned at eye and looking at center.
//
// Parameters:
//   - eye: eye position in world space
//   - center: target point the eye looks at
//   - up: up vector defining orientation (typically 0,1,0)
//
// Returns:
//   - math32.Matrix4: the view matrix
func LookAt(eye, center, up math32.Vector3) math32.Matrix4 {
	z := Normalize3(math32.Vec3(eye.X-center.X, eye.Y-center.Y, eye.Z-center.Z))
	x := Normalize3(math32.Vec3(up.Y*z.Z-up.Z*z.Y, up.Z*z.X-up.X*z.Z, up.X*z.Y-up.Y*z.X))
	y := math32.Vec3(z.Y*x.Z-z.Z*x.Y, z.Z*x.X-z.X*x.Z, z.X*x.Y-z.Y*x.X)

	var out math32.Matrix4
	out[0], out[4], out[8], out[12] = x.X, x.Y, x.Z, -(x.X*eye.X + x.Y*eye.Y + x.Z*eye.Z)
	out[1], out[5], out[9], out[13] = y.X, y.Y, y.Z, -(y.X*eye.X + y.Y*eye.Y + y.Z*eye.Z)
	out[2], out[6], out[10], out[14] = z.X, z.Y, z.Z, -(z.X*eye.X + z.Y*eye.Y + z.Z*eye.Z)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
	return out
}

// Normalize3 returns v scaled to unit length. The zero vector is returned unchanged.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - math32.Vector3: the normalized vector
func Normalize3(v math32.Vector3) math32.Vector3 {
	length := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
	if length == 0 {
		return v
	}
	inv := 1.0 / length
	return math32.Vec3(v.X*inv, v.Y*inv, v.Z*inv)
}
