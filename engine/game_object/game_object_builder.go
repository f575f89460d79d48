package game_object

import (
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithMaterial sets the Material used to draw the GameObject.
//
// Parameters:
//   - m: the Material to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Material
func WithMaterial(m material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mat = m
	}
}

// WithChildren appends children to the GameObject.
//
// Parameters:
//   - children: the children to attach, in order
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach children
func WithChildren(children ...GameObject) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.children = append(obj.children, children...)
	}
}

// WithInitHook sets the function run by InitObject.
//
// Parameters:
//   - hook: the init hook
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the init hook
func WithInitHook(hook InitHook) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.initHook = hook
	}
}
