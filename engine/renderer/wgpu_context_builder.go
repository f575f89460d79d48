package renderer

import "github.com/cogentcore/webgpu/wgpu"

// WGPUContextOption is a functional option for configuring a WGPUContext.
type WGPUContextOption func(*wgpuContext)

// WithVisibility sets the shader stages uniform blocks are visible to.
// Defaults to vertex | fragment.
//
// Parameters:
//   - stages: the shader stage visibility flags
//
// Returns:
//   - WGPUContextOption: option function to apply
func WithVisibility(stages wgpu.ShaderStage) WGPUContextOption {
	return func(c *wgpuContext) {
		c.visibility = stages
	}
}
