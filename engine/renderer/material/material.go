package material

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// ProgramInfo identifies a linked shader program and carries its reflected uniform-block layout.
type ProgramInfo struct {
	Program shader.Program
	Layout  *shader.ProgramLayout
}

// material is the implementation of the Material interface.
type material struct {
	name    string
	program shader.Program
	layout  *shader.ProgramLayout
}

// Material defines the interface for a render material: a shader program plus the
// program's reflected uniform-block layout.
//
// Materials are compared by identity. Two distinct Material values get independent
// uniform buffers in a scene even when they wrap the same program.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// ProgramInfo retrieves the program handle and reflected layout of the material.
	//
	// Returns:
	//   - ProgramInfo: the program info
	ProgramInfo() ProgramInfo
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// FromSource creates a Material whose layout is reflected from the program's WGSL source.
//
// Parameters:
//   - name: the material identifier
//   - program: the linked program handle
//   - source: the WGSL source the program was built from
//
// Returns:
//   - Material: the new material
//   - error: the reflection error, if any
func FromSource(name string, program shader.Program, source string) (Material, error) {
	layout, err := shader.Reflect(source)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", name, err)
	}
	return NewMaterial(WithName(name), WithProgram(program), WithLayout(layout)), nil
}

func (m *material) Name() string {
	return m.name
}

func (m *material) ProgramInfo() ProgramInfo {
	return ProgramInfo{Program: m.program, Layout: m.layout}
}
