package light

import (
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/common"
)

// LightBuilderOption is a function that configures a Light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithID is an option builder that sets the scene object ID of the light.
//
// Parameters:
//   - id: unique identifier for the light
//
// Returns:
//   - LightBuilderOption: a function that applies the ID option to a lightImpl
func WithID(id uint64) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetID(id)
	}
}

// WithPosition is an option builder that sets the world-space position of the light.
//
// Parameters:
//   - x: the x position component
//   - y: the y position component
//   - z: the z position component
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = math32.Vec3(x, y, z)
	}
}

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a lightImpl
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = common.Normalize3(math32.Vec3(x, y, z))
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the color option to a lightImpl
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = math32.Vec3(r, g, b)
	}
}

// WithSpecularColor is an option builder that sets the specular highlight color of a point light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - LightBuilderOption: a function that applies the specular color option to a lightImpl
func WithSpecularColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.specularColor = math32.Vec3(r, g, b)
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier of the light.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: a function that applies the intensity option to a lightImpl
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithPower is an option builder that sets the distance falloff power of a point light.
//
// Parameters:
//   - power: the power value
//
// Returns:
//   - LightBuilderOption: a function that applies the power option to a lightImpl
func WithPower(power float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.power = power
	}
}
