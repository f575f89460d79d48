package scene

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scene/engine/light"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/uniform"
)

var (
	// ErrNilObject is returned when a nil object is added.
	ErrNilObject = errors.New("scene: object is nil")

	// ErrMaterialInUse is returned when releasing a material that objects in the scene still use.
	ErrMaterialInUse = errors.New("scene: material is still in use")
)

// Scene is the single owner of a scene graph: the object table, the light registry,
// the per-program renderable groups and the per-material uniform blocks that mirror
// lighting, projection and camera state on the GPU.
//
// A Scene is not safe for concurrent use. Every operation, including its GPU writes,
// completes before it returns.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Add registers obj by ID, overwriting any object already registered under it.
	// A zero ID is replaced with the next free one. Lights join the light registry and
	// lighting is re-synced for every material. Objects with a material are validated,
	// initialized and grouped by program; the first object of a material allocates the
	// material's uniform blocks and re-syncs lighting. Children are not added.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - error: a configuration error (uniform.ErrMissingLayout, uniform.ErrMissingBlock),
	//     an init error, or a GPU error from synchronization
	Add(obj game_object.GameObject) error

	// AddHierarchy adds obj and then every descendant, depth-first in child order.
	//
	// Parameters:
	//   - obj: the root object
	//
	// Returns:
	//   - error: the joined errors of each Add
	AddHierarchy(obj game_object.GameObject) error

	// Remove removes the object registered under obj's ID, its renderable group entry and,
	// recursively, its children. Removing an unknown object logs a warning and does
	// nothing. Uniform blocks are kept. A removed light leaves the registry and lighting
	// is re-synced.
	//
	// Parameters:
	//   - obj: the object to remove
	//
	// Returns:
	//   - error: a GPU error from re-syncing lighting
	Remove(obj game_object.GameObject) error

	// Get retrieves an object by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Count returns the number of registered objects.
	Count() int

	// Objects returns the registered objects ordered by ID.
	Objects() []game_object.GameObject

	// Lights returns the light registry in insertion order.
	Lights() []light.Light

	// Renderables returns the renderable groups in the order their program was first seen.
	Renderables() []RenderableGroup

	// Group returns the renderable group of program.
	//
	// Parameters:
	//   - program: the shader program
	//
	// Returns:
	//   - RenderableGroup: a copy of the group
	//   - bool: false if no object with that program was ever added
	Group(program shader.Program) (RenderableGroup, bool)

	// UniformSet returns the uniform blocks allocated for m.
	//
	// Parameters:
	//   - m: the material
	//
	// Returns:
	//   - *uniform.Set: the set, or nil
	//   - bool: false if m has no set
	UniformSet(m material.Material) (*uniform.Set, bool)

	// ReleaseMaterial forgets m's uniform blocks. A later Add with m allocates new ones.
	//
	// Parameters:
	//   - m: the material
	//
	// Returns:
	//   - error: ErrMaterialInUse if a registered object uses m, or uniform.ErrNoSet
	ReleaseMaterial(m material.Material) error

	// Clear drops every object, light and renderable group. Uniform blocks are kept; when
	// lights were registered their blocks are zeroed and pushed.
	//
	// Returns:
	//   - error: the joined push errors of the light reset
	Clear() error

	// SyncLights stages every registered light into every material's uniform blocks and
	// pushes them, in registry order. Lights of the same kind share one slot, so the
	// last one wins.
	//
	// Returns:
	//   - error: the joined staging and GPU errors
	SyncLights() error

	// UpdateProjectionMatrix stages and pushes the Projection block of every material.
	//
	// Parameters:
	//   - m: the projection matrix
	//
	// Returns:
	//   - error: the joined staging and GPU errors
	UpdateProjectionMatrix(m math32.Matrix4) error

	// UpdateCameraPosition stages and pushes the View block of every material.
	//
	// Parameters:
	//   - p: the camera world position
	//
	// Returns:
	//   - error: the joined staging and GPU errors
	UpdateCameraPosition(p math32.Vector3) error

	// SyncCamera pushes cam's projection matrix and position.
	//
	// Parameters:
	//   - cam: the camera
	//
	// Returns:
	//   - error: the joined staging and GPU errors
	SyncCamera(cam camera.Camera) error
}

type scene struct {
	name   string
	ctx    renderer.Context
	logger *slog.Logger

	objects     map[uint64]game_object.GameObject
	nextID      uint64
	lights      []light.Light
	renderables *renderableIndex
	store       *uniform.Store

	initial []game_object.GameObject

	// stagingPool fans light staging out across materials; nil stages serially.
	stagingPool    worker.DynamicWorkerPool
	stagingWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene that allocates and writes uniform blocks through ctx.
// NewScene panics if ctx is nil.
//
// Parameters:
//   - name: the name of the scene
//   - ctx: the graphics context (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: the joined errors of adding WithObjects objects
func NewScene(name string, ctx renderer.Context, options ...SceneBuilderOption) (Scene, error) {
	if ctx == nil {
		panic("scene: NewScene requires a non-nil Context")
	}

	s := &scene{
		name:        name,
		ctx:         ctx,
		logger:      slog.Default(),
		objects:     make(map[uint64]game_object.GameObject),
		nextID:      1,
		renderables: newRenderableIndex(),
		store:       uniform.NewStore(ctx),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithStagingWorkers can enable it.
	if s.stagingWorkers > 0 {
		s.stagingPool = worker.NewDynamicWorkerPool(s.stagingWorkers, 256, 1*time.Second)
	}

	var errs []error
	for _, obj := range s.initial {
		if err := s.Add(obj); err != nil {
			errs = append(errs, err)
		}
	}
	s.initial = nil
	if err := errors.Join(errs...); err != nil {
		return s, fmt.Errorf("scene %q: %w", name, err)
	}
	return s, nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Add(obj game_object.GameObject) error {
	if obj == nil {
		return ErrNilObject
	}

	if l, ok := obj.(light.Light); ok {
		s.register(obj)
		if !slices.Contains(s.lights, l) {
			s.lights = append(s.lights, l)
		}
		return s.SyncLights()
	}

	m := obj.Material()
	if m != nil {
		if err := uniform.Validate(m); err != nil {
			return err
		}
	}
	prev, had := s.objects[obj.ID()]
	id := s.register(obj)
	if m == nil {
		return nil
	}

	if err := obj.InitObject(s.ctx); err != nil {
		s.unregister(id, prev, had)
		return err
	}

	var syncErr error
	if !s.store.Has(m) {
		if _, err := s.store.Create(m); err != nil {
			s.unregister(id, prev, had)
			return err
		}
		syncErr = s.SyncLights()
	}

	s.renderables.add(m.ProgramInfo().Program, obj)
	return syncErr
}

// register records obj in the object table, assigning an ID when it has none.
// It returns the ID obj was stored under.
func (s *scene) register(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if id == 0 {
		id = s.nextID
		obj.SetID(id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.objects[id] = obj
	return id
}

// unregister undoes a register call, putting back whatever held the slot before.
func (s *scene) unregister(id uint64, prev game_object.GameObject, had bool) {
	if had {
		s.objects[id] = prev
		return
	}
	delete(s.objects, id)
}

func (s *scene) AddHierarchy(obj game_object.GameObject) error {
	var errs []error
	game_object.Walk(obj, func(o game_object.GameObject) bool {
		if err := s.Add(o); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errors.Join(errs...)
}

func (s *scene) Remove(obj game_object.GameObject) error {
	if obj == nil {
		return nil
	}
	if !s.remove(obj) {
		return nil
	}
	return s.resetLights()
}

// remove deletes obj and its descendants.
//
// Returns:
//   - bool: true if a light left the registry
func (s *scene) remove(obj game_object.GameObject) bool {
	found, ok := s.objects[obj.ID()]
	if !ok {
		s.logger.Warn("scene: remove of unknown object", "scene", s.name, "id", obj.ID())
		return false
	}

	if m := found.Material(); m != nil {
		s.renderables.remove(m.ProgramInfo().Program, found)
	}

	lightRemoved := false
	for _, child := range found.Children() {
		if s.remove(child) {
			lightRemoved = true
		}
	}

	delete(s.objects, found.ID())

	if l, ok := found.(light.Light); ok {
		if i := slices.Index(s.lights, l); i >= 0 {
			s.lights = slices.Delete(s.lights, i, i+1)
			lightRemoved = true
		}
	}
	return lightRemoved
}

func (s *scene) Get(id uint64) game_object.GameObject {
	return s.objects[id]
}

func (s *scene) Count() int {
	return len(s.objects)
}

func (s *scene) Objects() []game_object.GameObject {
	out := make([]game_object.GameObject, 0, len(s.objects))
	for _, obj := range s.objects {
		out = append(out, obj)
	}
	slices.SortFunc(out, func(a, b game_object.GameObject) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})
	return out
}

func (s *scene) Lights() []light.Light {
	return slices.Clone(s.lights)
}

func (s *scene) Renderables() []RenderableGroup {
	return s.renderables.all()
}

func (s *scene) Group(program shader.Program) (RenderableGroup, bool) {
	return s.renderables.group(program)
}

func (s *scene) UniformSet(m material.Material) (*uniform.Set, bool) {
	return s.store.Get(m)
}

func (s *scene) ReleaseMaterial(m material.Material) error {
	for _, obj := range s.objects {
		if obj.Material() == m {
			return fmt.Errorf("release %q: %w: object %d", m.Name(), ErrMaterialInUse, obj.ID())
		}
	}
	if !s.store.Release(m) {
		return fmt.Errorf("release %q: %w", m.Name(), uniform.ErrNoSet)
	}
	return nil
}

func (s *scene) Clear() error {
	hadLights := len(s.lights) > 0
	s.objects = make(map[uint64]game_object.GameObject)
	s.lights = nil
	s.renderables.reset()
	if !hadLights {
		return nil
	}
	return s.resetLights()
}
