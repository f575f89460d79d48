package game_object

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
)

// InitHook prepares an object's GPU-side resources when it joins a scene.
type InitHook func(obj GameObject, ctx renderer.Context) error

type gameObject struct {
	id       uint64
	mat      material.Material
	children []GameObject
	initHook InitHook
}

// GameObject defines the interface for a scene entity. Objects with a Material are
// drawable and get grouped by the material's program; objects without one are logical
// nodes that only carry children.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID, or 0 if not yet assigned
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Material returns the Material used to draw this object, or nil for logical nodes.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Children returns the object's direct children in insertion order.
	//
	// Returns:
	//   - []GameObject: the children
	Children() []GameObject

	// AddChild appends a child to this object.
	//
	// Parameters:
	//   - child: the child to attach
	AddChild(child GameObject)

	// InitObject prepares the object's GPU-side resources. The scene calls it once per
	// Add, after the material has been validated and before the object is indexed.
	//
	// Parameters:
	//   - ctx: the graphics context
	//
	// Returns:
	//   - error: an error if initialization failed
	InitObject(ctx renderer.Context) error
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{}
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Material() material.Material {
	return g.mat
}

func (g *gameObject) Children() []GameObject {
	return g.children
}

func (g *gameObject) AddChild(child GameObject) {
	g.children = append(g.children, child)
}

func (g *gameObject) InitObject(ctx renderer.Context) error {
	if g.initHook == nil {
		return nil
	}
	if err := g.initHook(g, ctx); err != nil {
		return fmt.Errorf("init object %d: %w", g.id, err)
	}
	return nil
}

// Walk calls fn for obj and then every descendant, depth-first in child order.
//
// Parameters:
//   - obj: the root of the walk
//   - fn: called for each visited object; returning false skips that object's children
func Walk(obj GameObject, fn func(GameObject) bool) {
	if obj == nil || !fn(obj) {
		return
	}
	for _, child := range obj.Children() {
		Walk(child, fn)
	}
}
