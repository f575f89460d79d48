package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Device bundles the WebGPU objects needed to back a WGPUContext without a window.
type Device struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
}

// DeviceOption is a functional option for configuring NewDevice.
type DeviceOption func(*deviceConfig)

type deviceConfig struct {
	label                string
	forceFallbackAdapter bool
	maxBindGroups        uint32
}

// WithFallbackAdapter requests the software fallback adapter, e.g. on CI machines
// without a GPU.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - DeviceOption: option function to apply
func WithFallbackAdapter(force bool) DeviceOption {
	return func(c *deviceConfig) {
		c.forceFallbackAdapter = force
	}
}

// WithMaxBindGroups raises the device's bind group limit.
//
// Parameters:
//   - n: the number of bind groups programs may use
//
// Returns:
//   - DeviceOption: option function to apply
func WithMaxBindGroups(n uint32) DeviceOption {
	return func(c *deviceConfig) {
		c.maxBindGroups = n
	}
}

// NewDevice creates an instance, adapter and device with no presentation surface.
// Windowed applications create their device next to their surface instead and pass it
// to NewWGPUContext directly.
//
// Parameters:
//   - options: functional options to configure the device
//
// Returns:
//   - *Device: the created objects
//   - error: an error if no adapter or device could be obtained
func NewDevice(options ...DeviceOption) (*Device, error) {
	cfg := &deviceConfig{label: "Scene Device", maxBindGroups: 4}
	for _, opt := range options {
		opt(cfg)
	}

	instance := wgpu.CreateInstance(nil)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: cfg.forceFallbackAdapter,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	limits := wgpu.DefaultLimits()
	limits.MaxBindGroups = cfg.maxBindGroups

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: cfg.label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limits,
		},
	})
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}

	return &Device{Instance: instance, Adapter: adapter, Device: device}, nil
}

// Release releases the device, adapter and instance.
func (d *Device) Release() {
	if d.Device != nil {
		d.Device.Release()
	}
	if d.Adapter != nil {
		d.Adapter.Release()
	}
	if d.Instance != nil {
		d.Instance.Release()
	}
}
