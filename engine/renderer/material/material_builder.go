package material

import "github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithProgram is an option builder that sets the shader program handle of the material.
//
// Parameters:
//   - program: the linked program handle
//
// Returns:
//   - MaterialBuilderOption: a function that applies the program option to a material
func WithProgram(program shader.Program) MaterialBuilderOption {
	return func(m *material) {
		m.program = program
	}
}

// WithLayout is an option builder that sets the reflected uniform-block layout of the program.
//
// Parameters:
//   - layout: the program layout
//
// Returns:
//   - MaterialBuilderOption: a function that applies the layout option to a material
func WithLayout(layout *shader.ProgramLayout) MaterialBuilderOption {
	return func(m *material) {
		m.layout = layout
	}
}
