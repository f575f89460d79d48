package renderer

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// programGroup is the set of uniform blocks bound to one @group of one program,
// together with the bind group assembled from them.
type programGroup struct {
	providers map[uint32]bind_group_provider.BindGroupProvider
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// wgpuContext is the WebGPU implementation of WGPUContext.
type wgpuContext struct {
	device     *wgpu.Device
	queue      *wgpu.Queue
	visibility wgpu.ShaderStage

	providers []bind_group_provider.BindGroupProvider
	programs  map[shader.Program]map[uint32]*programGroup
}

// WGPUContext is a Context backed by a WebGPU device. Every uniform block gets its own
// uniform buffer; binding a block to a program (re)assembles the bind group of the
// block's @group from every block bound to that program so far.
type WGPUContext interface {
	Context

	// BindGroup returns the bind group assembled for program at group, or nil if no
	// block has been bound there yet. Draw code sets it on the render pass.
	//
	// Parameters:
	//   - program: the program
	//   - group: the @group index
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup(program shader.Program, group uint32) *wgpu.BindGroup

	// BindGroupLayout returns the layout of the bind group for program at group, or nil.
	//
	// Parameters:
	//   - program: the program
	//   - group: the @group index
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout or nil
	BindGroupLayout(program shader.Program, group uint32) *wgpu.BindGroupLayout

	// Release releases every buffer, bind group and layout created by this context.
	Release()
}

var _ WGPUContext = &wgpuContext{}

// NewWGPUContext creates a WGPUContext on an already-initialized device. Surface and
// adapter setup stay with the caller.
//
// Parameters:
//   - device: the WebGPU device
//   - options: functional options to configure the context
//
// Returns:
//   - WGPUContext: the new context
func NewWGPUContext(device *wgpu.Device, options ...WGPUContextOption) WGPUContext {
	c := &wgpuContext{
		device:     device,
		queue:      device.GetQueue(),
		visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		programs:   make(map[shader.Program]map[uint32]*programGroup),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *wgpuContext) CreateUniformBlock(program shader.Program, layout shader.BlockLayout) (BlockHandle, error) {
	label := fmt.Sprintf("program %d %s", program, common.Coalesce(layout.Name, layout.Var, "uniform"))
	p := bind_group_provider.NewBindGroupProvider(label,
		bind_group_provider.WithLocation(layout.Group, layout.Binding),
		bind_group_provider.WithSize(layout.Size),
	)

	buf, err := c.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Buffer",
		Size:  layout.Size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer %q: %w", label, err)
	}
	p.SetBuffer(buf)
	c.providers = append(c.providers, p)

	return p, nil
}

func (c *wgpuContext) WriteUniformBlock(handle BlockHandle, data []byte) error {
	p, ok := handle.(bind_group_provider.BindGroupProvider)
	if !ok {
		return ErrForeignHandle
	}
	c.writeBuffers([]bind_group_provider.BufferWrite{{Provider: p, Offset: 0, Data: data}})
	return nil
}

func (c *wgpuContext) BindUniformBlock(program shader.Program, handle BlockHandle) error {
	p, ok := handle.(bind_group_provider.BindGroupProvider)
	if !ok {
		return ErrForeignHandle
	}

	groups := c.programs[program]
	if groups == nil {
		groups = make(map[uint32]*programGroup)
		c.programs[program] = groups
	}
	pg := groups[p.Group()]
	if pg == nil {
		pg = &programGroup{providers: make(map[uint32]bind_group_provider.BindGroupProvider)}
		groups[p.Group()] = pg
	}

	// Buffer contents are already current after the queue write; the bind group only
	// changes when a different block lands on a binding.
	if existing, bound := pg.providers[p.Binding()]; bound && existing == p && pg.bindGroup != nil {
		return nil
	}
	pg.providers[p.Binding()] = p

	if err := c.rebuildBindGroup(program, p.Group(), pg); err != nil {
		return fmt.Errorf("bind uniform block %q: %w", p.Label(), err)
	}
	return nil
}

func (c *wgpuContext) BindGroup(program shader.Program, group uint32) *wgpu.BindGroup {
	if pg := c.programs[program][group]; pg != nil {
		return pg.bindGroup
	}
	return nil
}

func (c *wgpuContext) BindGroupLayout(program shader.Program, group uint32) *wgpu.BindGroupLayout {
	if pg := c.programs[program][group]; pg != nil {
		return pg.layout
	}
	return nil
}

func (c *wgpuContext) Release() {
	for _, groups := range c.programs {
		for _, pg := range groups {
			pg.release()
		}
	}
	c.programs = make(map[shader.Program]map[uint32]*programGroup)

	for _, p := range c.providers {
		p.Release()
	}
	c.providers = nil
}

// writeBuffers pushes staged writes to the GPU queue, skipping providers whose
// buffer has been released.
//
// Parameters:
//   - writes: the buffer writes to submit
func (c *wgpuContext) writeBuffers(writes []bind_group_provider.BufferWrite) {
	for _, w := range writes {
		buf := w.Provider.Buffer()
		if buf == nil {
			continue
		}
		c.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

// rebuildBindGroup recreates the layout and bind group of one program group from
// every provider currently bound to it, ordered by binding index.
//
// Parameters:
//   - program: the program owning the group
//   - group: the @group index
//   - pg: the group state to rebuild
//
// Returns:
//   - error: an error if a GPU object could not be created
func (c *wgpuContext) rebuildBindGroup(program shader.Program, group uint32, pg *programGroup) error {
	bindings := make([]uint32, 0, len(pg.providers))
	for b := range pg.providers {
		bindings = append(bindings, b)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i] < bindings[j] })

	layoutEntries := make([]wgpu.BindGroupLayoutEntry, len(bindings))
	groupEntries := make([]wgpu.BindGroupEntry, len(bindings))
	for i, b := range bindings {
		p := pg.providers[b]
		if p.Buffer() == nil {
			return fmt.Errorf("uniform block %q has no buffer", p.Label())
		}
		layoutEntries[i] = wgpu.BindGroupLayoutEntry{
			Binding:    b,
			Visibility: c.visibility,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: p.Size(),
			},
		}
		groupEntries[i] = wgpu.BindGroupEntry{
			Binding: b,
			Buffer:  p.Buffer(),
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	label := fmt.Sprintf("program %d group %d", program, group)
	layout, err := c.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label + " Layout",
		Entries: layoutEntries,
	})
	if err != nil {
		return err
	}
	bindGroup, err := c.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label + " Bind Group",
		Layout:  layout,
		Entries: groupEntries,
	})
	if err != nil {
		layout.Release()
		return err
	}

	pg.release()
	pg.layout = layout
	pg.bindGroup = bindGroup
	return nil
}

// release frees the group's bind group and layout; the providers' buffers are owned by the context.
func (pg *programGroup) release() {
	if pg.bindGroup != nil {
		pg.bindGroup.Release()
		pg.bindGroup = nil
	}
	if pg.layout != nil {
		pg.layout.Release()
		pg.layout = nil
	}
}
