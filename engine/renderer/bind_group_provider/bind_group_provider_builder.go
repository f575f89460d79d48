package bind_group_provider

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithLocation sets the @group and @binding indices of the uniform block.
//
// Parameters:
//   - group: the bind group index
//   - binding: the binding index within the group
//
// Returns:
//   - BindGroupProviderOption: a function that sets the block location for this provider
func WithLocation(group, binding uint32) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.group = group
		p.binding = binding
	}
}

// WithSize sets the byte size of the uniform block.
//
// Parameters:
//   - size: the block size in bytes
//
// Returns:
//   - BindGroupProviderOption: a function that sets the block size for this provider
func WithSize(size uint64) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.size = size
	}
}
