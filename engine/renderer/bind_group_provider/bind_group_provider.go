package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label added for convenience.
	label string

	// group and binding locate the uniform block in the program's bind group layout.
	group   uint32
	binding uint32
	// size is the byte size of the uniform block, used to allocate the buffer.
	size uint64

	// buffer is the GPU uniform buffer backing the block, or nil until the context allocates it.
	buffer *wgpu.Buffer
}

// BindGroupProvider holds the GPU resources backing a single uniform block.
//
// Usage pattern:
//  1. The graphics context creates a provider from a reflected block layout
//  2. The context allocates the uniform buffer and stores it via SetBuffer()
//  3. Writes target the provider through a BufferWrite
//  4. The context assembles bind groups from the providers bound to a program
type BindGroupProvider interface {
	// Release releases the GPU buffer held by this provider.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// Group returns the bind group index the block is declared in.
	//
	// Returns:
	//   - uint32: the @group index
	Group() uint32

	// Binding returns the binding index of the block within its group.
	//
	// Returns:
	//   - uint32: the @binding index
	Binding() uint32

	// Size returns the byte size of the uniform block.
	//
	// Returns:
	//   - uint64: the block size in bytes
	Size() uint64

	// Buffer returns the uniform buffer, or nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer() *wgpu.Buffer

	// SetBuffer stores the uniform buffer after GPU allocation.
	//
	// Parameters:
	//   - buf: the created buffer
	SetBuffer(buf *wgpu.Buffer)
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a new BindGroupProvider with the provided options.
//
// Parameters:
//   - label: debug label used for the GPU objects created for this provider
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: a new instance of BindGroupProvider configured with the provided options
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{label: label}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) Group() uint32 {
	return p.group
}

func (p *bindGroupProvider) Binding() uint32 {
	return p.binding
}

func (p *bindGroupProvider) Size() uint64 {
	return p.size
}

func (p *bindGroupProvider) Buffer() *wgpu.Buffer {
	return p.buffer
}

func (p *bindGroupProvider) SetBuffer(buf *wgpu.Buffer) {
	p.buffer = buf
}

func (p *bindGroupProvider) Release() {
	if p.buffer != nil {
		p.buffer.Release()
		p.buffer = nil
	}
}
