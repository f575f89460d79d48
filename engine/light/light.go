package light

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
)

// Kind identifies the kind of light source.
type Kind int

const (
	// KindAmbient represents a uniform light with no position or direction.
	// It lifts every fragment by color * intensity.
	KindAmbient Kind = iota

	// KindDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun or moon.
	KindDirectional

	// KindPoint represents a light that emits in all directions from a position.
	// It carries a falloff power and a separate specular color.
	KindPoint
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAmbient:
		return "ambient"
	case KindDirectional:
		return "directional"
	case KindPoint:
		return "point"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Visitor receives a light dispatched by its kind.
type Visitor interface {
	VisitAmbient(l Light) error
	VisitDirectional(l Light) error
	VisitPoint(l Light) error
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	game_object.GameObject

	kind          Kind
	position      math32.Vector3
	direction     math32.Vector3
	color         math32.Vector3
	specularColor math32.Vector3
	intensity     float32
	power         float32
}

// Light defines the interface for a light source in the scene.
//
// A Light is also a GameObject: the scene keeps it in its object table like any
// other node and additionally in its light registry. Lights never carry a material,
// so they are never drawn. Kind-specific properties (direction, position, power,
// specular color) are stored for every light but only read for the kinds they
// apply to.
type Light interface {
	game_object.GameObject

	// Kind returns the kind of light source.
	//
	// Returns:
	//   - Kind: ambient, directional, or point
	Kind() Kind

	// Position returns the world-space position of the light.
	// Only meaningful for point lights.
	//
	// Returns:
	//   - math32.Vector3: the position
	Position() math32.Vector3

	// Direction returns the normalized direction of the light.
	// Only meaningful for directional lights.
	//
	// Returns:
	//   - math32.Vector3: the normalized direction
	Direction() math32.Vector3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - math32.Vector3: the color as (r, g, b)
	Color() math32.Vector3

	// SpecularColor returns the RGB color of specular highlights.
	// Only meaningful for point lights.
	//
	// Returns:
	//   - math32.Vector3: the specular color as (r, g, b)
	SpecularColor() math32.Vector3

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// Power returns the distance falloff power of a point light.
	//
	// Returns:
	//   - float32: the power value
	Power() float32

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - p: the position
	SetPosition(p math32.Vector3)

	// SetDirection sets the direction of the light and normalizes it.
	//
	// Parameters:
	//   - d: the direction (will be normalized)
	SetDirection(d math32.Vector3)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - c: the color
	SetColor(c math32.Vector3)

	// SetSpecularColor sets the RGB color of specular highlights.
	//
	// Parameters:
	//   - c: the specular color
	SetSpecularColor(c math32.Vector3)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// SetPower sets the distance falloff power.
	//
	// Parameters:
	//   - power: the power value
	SetPower(power float32)

	// Accept dispatches the light to the visitor method for its kind.
	//
	// Parameters:
	//   - v: the visitor
	//
	// Returns:
	//   - error: the visitor's error
	Accept(v Visitor) error
}

var _ Light = &lightImpl{}

// NewLight creates a new Light of the specified kind with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - kind: the kind of light to create
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(kind Kind, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		GameObject:    game_object.NewGameObject(),
		kind:          kind,
		direction:     math32.Vec3(0, -1, 0),
		color:         math32.Vec3(1, 1, 1),
		specularColor: math32.Vec3(1, 1, 1),
		intensity:     1.0,
		power:         1.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Kind() Kind {
	return l.kind
}

func (l *lightImpl) Position() math32.Vector3 {
	return l.position
}

func (l *lightImpl) Direction() math32.Vector3 {
	return l.direction
}

func (l *lightImpl) Color() math32.Vector3 {
	return l.color
}

func (l *lightImpl) SpecularColor() math32.Vector3 {
	return l.specularColor
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Power() float32 {
	return l.power
}

func (l *lightImpl) SetPosition(p math32.Vector3) {
	l.position = p
}

func (l *lightImpl) SetDirection(d math32.Vector3) {
	l.direction = common.Normalize3(d)
}

func (l *lightImpl) SetColor(c math32.Vector3) {
	l.color = c
}

func (l *lightImpl) SetSpecularColor(c math32.Vector3) {
	l.specularColor = c
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetPower(power float32) {
	l.power = power
}

func (l *lightImpl) Accept(v Visitor) error {
	switch l.kind {
	case KindAmbient:
		return v.VisitAmbient(l)
	case KindDirectional:
		return v.VisitDirectional(l)
	case KindPoint:
		return v.VisitPoint(l)
	}
	return fmt.Errorf("light %d: unknown kind %s", l.ID(), l.kind)
}
