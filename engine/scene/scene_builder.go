package scene

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithLogger sets the logger used for non-fatal conditions such as removing an
// unknown object. Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger to use; nil keeps the default
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) SceneBuilderOption {
	return func(s *scene) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObjects adds initial objects to the scene once it is constructed, in order,
// exactly as Add would. Errors are returned by NewScene.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		s.initial = append(s.initial, objects...)
	}
}

// WithStagingWorkers enables a worker pool of n goroutines that stages light values
// into the uniform blocks of different materials concurrently. GPU writes stay on the
// calling goroutine in material order, so the result is identical to serial staging.
// Pays off only with many materials; disabled by default.
//
// Parameters:
//   - n: the number of staging workers; values below 1 disable the pool
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStagingWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		s.stagingWorkers = max(n, 0)
	}
}
