package uniform

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/material"
)

var (
	// ErrMissingLayout is returned when a material carries no reflected program layout.
	ErrMissingLayout = errors.New("uniform: material has no program layout")

	// ErrMissingBlock is returned when a material's program does not declare a required block.
	ErrMissingBlock = errors.New("uniform: program layout is missing a required block")

	// ErrSetExists is returned when a set is created twice for the same material.
	ErrSetExists = errors.New("uniform: block set already exists for material")

	// ErrNoSet is returned when updating a block of a material that has no set.
	ErrNoSet = errors.New("uniform: material has no block set")
)

// Store is the per-material record of uniform block sets. Sets iterate in the order
// their materials were first created, so GPU write order is deterministic.
// Store is not safe for concurrent use.
type Store struct {
	ctx  renderer.Context
	sets *ordmap.Map[material.Material, *Set]
}

// NewStore creates an empty Store that allocates blocks through ctx.
//
// Parameters:
//   - ctx: the graphics context
//
// Returns:
//   - *Store: the new store
func NewStore(ctx renderer.Context) *Store {
	return &Store{
		ctx:  ctx,
		sets: ordmap.New[material.Material, *Set](),
	}
}

// Validate reports whether m's program layout declares every required block.
//
// Parameters:
//   - m: the material to check
//
// Returns:
//   - error: ErrMissingLayout or ErrMissingBlock (wrapped) when the layout is unusable
func Validate(m material.Material) error {
	info := m.ProgramInfo()
	if info.Layout == nil {
		return fmt.Errorf("material %q: %w", materialLabel(m), ErrMissingLayout)
	}
	for _, name := range RequiredBlocks {
		if _, ok := info.Layout.Block(name); !ok {
			return fmt.Errorf("material %q: %w: %s", materialLabel(m), ErrMissingBlock, name)
		}
	}
	return nil
}

// Create allocates the Lights, PointLight, Projection and View blocks for m and
// records them. Blocks start zeroed and unsynced.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - *Set: the new set
//   - error: ErrSetExists, a validation error, or a context error
func (s *Store) Create(m material.Material) (*Set, error) {
	if s.Has(m) {
		return nil, fmt.Errorf("material %q: %w", materialLabel(m), ErrSetExists)
	}
	if err := Validate(m); err != nil {
		return nil, err
	}

	info := m.ProgramInfo()
	blocks := make(map[string]*Block, len(RequiredBlocks))
	for _, name := range RequiredBlocks {
		layout, _ := info.Layout.Block(name)
		handle, err := s.ctx.CreateUniformBlock(info.Program, layout)
		if err != nil {
			return nil, fmt.Errorf("material %q: create %s block: %w", materialLabel(m), name, err)
		}
		blocks[name] = newBlock(layout, handle)
	}

	set := &Set{
		Lights:     blocks[BlockLights],
		PointLight: blocks[BlockPointLight],
		Projection: blocks[BlockProjection],
		View:       blocks[BlockView],
	}
	s.sets.Add(m, set)
	return set, nil
}

// Update writes the block's staged bytes into its GPU buffer and binds it to the
// program. It is the only path that touches the GPU.
//
// Parameters:
//   - info: the program the block belongs to
//   - b: the block to push
//
// Returns:
//   - error: a context error
func (s *Store) Update(info material.ProgramInfo, b *Block) error {
	if err := s.ctx.WriteUniformBlock(b.handle, b.data); err != nil {
		return fmt.Errorf("write %s block: %w", b.Name(), err)
	}
	if err := s.ctx.BindUniformBlock(info.Program, b.handle); err != nil {
		return fmt.Errorf("bind %s block: %w", b.Name(), err)
	}
	return nil
}

// UpdateMaterial pushes m's named block.
//
// Parameters:
//   - m: the material
//   - name: the block name
//
// Returns:
//   - error: ErrNoSet if m has no set, or a context error
func (s *Store) UpdateMaterial(m material.Material, name string) error {
	set, ok := s.Get(m)
	if !ok {
		return fmt.Errorf("material %q: %w", materialLabel(m), ErrNoSet)
	}
	b := set.Block(name)
	if b == nil {
		return fmt.Errorf("material %q: %w: %s", materialLabel(m), ErrMissingBlock, name)
	}
	return s.Update(m.ProgramInfo(), b)
}

// Get returns the set of m.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - *Set: the set, or nil
//   - bool: false if m has no set
func (s *Store) Get(m material.Material) (*Set, bool) {
	return s.sets.ValueByKeyTry(m)
}

// Has reports whether m has a set.
func (s *Store) Has(m material.Material) bool {
	_, ok := s.sets.Map[m]
	return ok
}

// Len returns the number of materials with a set.
func (s *Store) Len() int {
	return s.sets.Len()
}

// Materials returns the materials with a set in creation order.
func (s *Store) Materials() []material.Material {
	return s.sets.Keys()
}

// Range calls fn for every set in creation order. Every set is visited even when fn
// fails; the errors are joined.
//
// Parameters:
//   - fn: called with each material and its set
//
// Returns:
//   - error: the joined errors returned by fn
func (s *Store) Range(fn func(m material.Material, set *Set) error) error {
	var errs []error
	for _, kv := range s.sets.Order {
		if err := fn(kv.Key, kv.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Release forgets m's set. GPU handles are left to the context's owner.
//
// Parameters:
//   - m: the material
//
// Returns:
//   - bool: false if m had no set
func (s *Store) Release(m material.Material) bool {
	return s.sets.DeleteKey(m)
}

// materialLabel returns a printable name for m.
func materialLabel(m material.Material) string {
	return common.Coalesce(m.Name(), fmt.Sprintf("program %d", m.ProgramInfo().Program))
}
