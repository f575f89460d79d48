package shader

import (
	"fmt"
	"sort"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrNoUniformBlocks is returned by Reflect when the source declares no var<uniform> bindings.
	ErrNoUniformBlocks = errors.New("shader: source declares no uniform blocks")

	// ErrUnresolvedType is returned by Reflect when a uniform block's type cannot be laid out.
	ErrUnresolvedType = errors.New("shader: unresolved uniform block type")
)

// Program is an opaque handle to a linked shader program owned by the graphics driver.
// Renderables sharing a Program are drawn together to minimize program switches.
type Program uint64

// FieldLayout describes one member of a uniform block as it sits in the GPU buffer.
// Nested struct members are flattened with dotted names, e.g. "ambientLight.color".
type FieldLayout struct {
	Name   string
	Type   string
	Offset uint64
	Size   uint64
}

// BlockLayout is the reflected layout of a single uniform block.
type BlockLayout struct {
	// Name is the block's struct type name (e.g. "Lights"). Blocks declared with a
	// non-struct type use the variable name instead.
	Name    string
	Var     string
	Group   uint32
	Binding uint32
	Size    uint64
	Fields  map[string]FieldLayout
}

// Field looks up a flattened member by name.
//
// Parameters:
//   - name: the dotted member name
//
// Returns:
//   - FieldLayout: the member layout
//   - bool: false if the block has no such member
func (b BlockLayout) Field(name string) (FieldLayout, bool) {
	f, ok := b.Fields[name]
	return f, ok
}

// FieldNames returns the block's flattened member names sorted by offset.
//
// Returns:
//   - []string: member names in buffer order
func (b BlockLayout) FieldNames() []string {
	names := make([]string, 0, len(b.Fields))
	for name := range b.Fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		fi, fj := b.Fields[names[i]], b.Fields[names[j]]
		if fi.Offset != fj.Offset {
			return fi.Offset < fj.Offset
		}
		return names[i] < names[j]
	})
	return names
}

// ProgramLayout is the reflected uniform-block metadata of a shader program.
type ProgramLayout struct {
	blocks map[string]BlockLayout
}

// NewProgramLayout builds a ProgramLayout from already-reflected blocks.
// Used by drivers that reflect through their own API instead of WGSL source.
//
// Parameters:
//   - blocks: the uniform blocks of the program
//
// Returns:
//   - *ProgramLayout: the program layout keyed by block name
func NewProgramLayout(blocks ...BlockLayout) *ProgramLayout {
	pl := &ProgramLayout{blocks: make(map[string]BlockLayout, len(blocks))}
	for _, b := range blocks {
		pl.blocks[b.Name] = b
	}
	return pl
}

// Block returns the uniform block with the given name.
//
// Parameters:
//   - name: the block name, e.g. "Lights"
//
// Returns:
//   - BlockLayout: the block layout
//   - bool: false if the program has no such block
func (pl *ProgramLayout) Block(name string) (BlockLayout, bool) {
	if pl == nil {
		return BlockLayout{}, false
	}
	b, ok := pl.blocks[name]
	return b, ok
}

// BlockNames returns the names of every reflected block, sorted.
//
// Returns:
//   - []string: block names
func (pl *ProgramLayout) BlockNames() []string {
	if pl == nil {
		return nil
	}
	names := make([]string, 0, len(pl.blocks))
	for name := range pl.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reflect parses WGSL source and returns the layout of every var<uniform> block it
// declares. Struct sizes, alignments and member offsets follow the WGSL layout rules.
//
// Parameters:
//   - source: the raw WGSL source code
//
// Returns:
//   - *ProgramLayout: the reflected program layout
//   - error: ErrNoUniformBlocks or ErrUnresolvedType (wrapped) on failure
func Reflect(source string) (*ProgramLayout, error) {
	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)
	layouts := computeStructLayouts(structs)

	decls := parseUniformDecls(cleaned)
	if len(decls) == 0 {
		return nil, ErrNoUniformBlocks
	}

	pl := &ProgramLayout{blocks: make(map[string]BlockLayout, len(decls))}
	for _, d := range decls {
		block := BlockLayout{
			Var:     d.varName,
			Group:   d.group,
			Binding: d.binding,
			Fields:  make(map[string]FieldLayout),
		}

		if sl, ok := layouts[d.typeName]; ok {
			block.Name = d.typeName
			block.Size = sl.size
			flattenFields(block.Fields, "", 0, sl, layouts)
		} else if tl, ok := resolveTypeLayout(d.typeName, layouts); ok {
			block.Name = d.varName
			block.Size = roundUpAlign(16, tl.size)
			block.Fields[d.varName] = FieldLayout{Name: d.varName, Type: d.typeName, Offset: 0, Size: tl.size}
		} else {
			return nil, fmt.Errorf("%w: %s %q", ErrUnresolvedType, d.varName, d.typeName)
		}

		pl.blocks[block.Name] = block
	}

	return pl, nil
}
