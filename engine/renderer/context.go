package renderer

import (
	"cogentcore.org/core/base/errors"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// ErrForeignHandle is returned when a BlockHandle created by a different Context is passed in.
var ErrForeignHandle = errors.New("renderer: block handle was not created by this context")

// BlockHandle is an opaque reference to a GPU-side uniform block created by a Context.
type BlockHandle interface {
	// Label returns a debug label identifying the block.
	//
	// Returns:
	//   - string: the debug label
	Label() string
}

// Context is the slice of the graphics driver the scene depends on: it creates uniform
// blocks from reflected program layouts, uploads block data and binds blocks to programs.
// All calls are synchronous and must come from the thread that owns the GPU context.
type Context interface {
	// CreateUniformBlock allocates GPU storage for one uniform block of a program.
	//
	// Parameters:
	//   - program: the program the block belongs to
	//   - layout: the reflected layout of the block
	//
	// Returns:
	//   - BlockHandle: the handle used for subsequent writes and binds
	//   - error: an error if the GPU allocation failed
	CreateUniformBlock(program shader.Program, layout shader.BlockLayout) (BlockHandle, error)

	// WriteUniformBlock uploads data into the block's GPU buffer starting at offset 0.
	//
	// Parameters:
	//   - handle: the block to write
	//   - data: the packed block contents
	//
	// Returns:
	//   - error: ErrForeignHandle or a driver error
	WriteUniformBlock(handle BlockHandle, data []byte) error

	// BindUniformBlock binds the block to its index in program's layout.
	//
	// Parameters:
	//   - program: the program to bind to
	//   - handle: the block to bind
	//
	// Returns:
	//   - error: ErrForeignHandle or a driver error
	BindUniformBlock(program shader.Program, handle BlockHandle) error
}
