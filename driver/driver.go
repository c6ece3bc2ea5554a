// Copyright 2025 The go-gfx Authors. All rights reserved.

// Package driver defines the backend-neutral surface of a GPU
// resource factory.
// Callers describe buffers, textures, shaders, pipeline state and
// samplers as plain descriptor values; a backend translates those
// descriptors into native API objects and hands back opaque handles
// owned by a shared registry.
package driver

import (
	"errors"
	"sync"

	"github.com/go-gfx/gfx/handle"
)

// Driver is the interface that provides methods for loading and
// unloading an underlying backend implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver have
	// no effect and must return the same Device instance.
	// Callers should assume that Open is not safe for parallel
	// execution.
	Open() (Device, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// Device is the shared device context from which factories are
// derived. It bundles the native API connection, the capability
// flags queried at open time and the handle registry that owns
// every created object.
// A Device is never structurally mutated after creation; only its
// registry grows. It outlives any factory derived from it.
type Device interface {
	// Caps returns the capability flags.
	// They are immutable for the lifetime of the device and may
	// be read concurrently.
	Caps() Capabilities

	// Handles returns the registry owning the device's objects.
	Handles() *handle.Registry

	// NewFactory derives a new resource factory.
	// At most one factory per device may be actively issuing
	// creation calls at any given time.
	NewFactory() Factory
}

// Factory is the interface that creates native GPU resources from
// descriptors. Every operation is a synchronous call into the
// native API: it either completes and returns a registered handle
// or fails with a typed error, leaving no object registered.
type Factory interface {
	// CreateBuffer creates a buffer with undefined contents.
	// A RoleUniform request fails with ErrUnsupported when the
	// device lacks constant buffer support.
	CreateBuffer(info BufferInfo) (handle.Buffer, error)

	// CreateBufferInit creates a Const-usage buffer of len(data)
	// bytes and uploads data into it at offset zero.
	CreateBufferInit(data []byte, stride int, role BufferRole, bind Bind) (handle.Buffer, error)

	// CreateShader compiles a single shader stage from source.
	CreateShader(stage Stage, src []byte) (handle.Shader, error)

	// CreateProgram links a shader set into a program object.
	// The set's shape dictates exactly which stages participate,
	// in declared order.
	CreateProgram(set *ShaderSet) (handle.Program, error)

	// CreatePipeline folds a pipeline descriptor and a linked
	// program into one immutable pipeline state aggregate.
	CreatePipeline(prog handle.Program, desc *PipelineDesc) (handle.Pipeline, error)

	// CreateTexture creates a texture or renderable surface.
	// hint selects the channel interpretation; ChanRaw requests
	// the backend's untyped default. data, when non-nil, holds
	// initial contents per mip level (and per cube face).
	CreateTexture(desc TexDesc, hint ChannelType, data [][]byte) (handle.Texture, error)

	// CreateSampler creates a sampler. It always succeeds: on
	// devices without sampler objects the handle is null-backed
	// but retains the requested state.
	CreateSampler(info *Sampling) handle.Sampler

	// ViewTextureAsShaderResource derives a shader resource view.
	// Surfaces cannot be sampled and fail with ErrNoBindFlag.
	ViewTextureAsShaderResource(t handle.Texture) (handle.ShaderResourceView, error)

	// ViewBufferAsShaderResource derives a shader resource view
	// over a buffer.
	ViewBufferAsShaderResource(b handle.Buffer) (handle.ShaderResourceView, error)

	// ViewTextureAsRenderTarget derives a render target view of
	// one mip level. layer selects a single array slice; pass
	// NoLayer for a whole-level view. Surfaces only support
	// level 0 with NoLayer.
	ViewTextureAsRenderTarget(t handle.Texture, level, layer int) (handle.RenderTargetView, error)

	// ViewTextureAsDepthStencil derives a depth/stencil view
	// under the same rules as ViewTextureAsRenderTarget.
	ViewTextureAsDepthStencil(t handle.Texture, level, layer int) (handle.DepthStencilView, error)

	// ViewTextureAsUnorderedAccess derives an unordered access
	// view. Backends may report ErrUnsupported.
	ViewTextureAsUnorderedAccess(t handle.Texture) (handle.UnorderedAccessView, error)

	// ViewBufferAsUnorderedAccess derives an unordered access
	// view over a buffer. Backends may report ErrUnsupported.
	ViewBufferAsUnorderedAccess(b handle.Buffer) (handle.UnorderedAccessView, error)

	// MapBuffer maps the buffer's whole native storage into host
	// memory under the given access mode.
	MapBuffer(b handle.Buffer, access MapAccess) (Mapping, error)

	// Unmap releases a mapping. The mapping's bytes must not be
	// accessed afterwards.
	Unmap(m Mapping) error
}

// Capabilities describes the optional features and limits of a
// device, queried once at open time.
type Capabilities struct {
	// Version is the native API version as (major, minor).
	Version [2]int
	// MaxTextureSize bounds each spatial texture dimension.
	MaxTextureSize int
	// ConstantBuffer reports uniform/constant buffer support.
	ConstantBuffer bool
	// BufferStorage reports support for immutable buffer
	// storage allocation.
	BufferStorage bool
	// ImmutableStorage reports support for immutable texture
	// storage allocation.
	ImmutableStorage bool
	// SamplerObjects reports support for native sampler objects.
	SamplerObjects bool
}

// ErrUnsupported means that a required capability is missing or
// that the source object's kind cannot back the requested view.
var ErrUnsupported = errors.New("driver: operation not supported")

// ErrNoBindFlag means that the source object was not created with
// a bind flag compatible with the requested view.
var ErrNoBindFlag = errors.New("driver: missing bind flag on source object")

// ErrDescriptor means that a pipeline descriptor is malformed,
// such as an attribute referencing an unpopulated vertex buffer
// slot. This indicates a programming error at the caller.
var ErrDescriptor = errors.New("driver: malformed pipeline descriptor")

// Drivers returns the registered Drivers.
// Backend packages register themselves on init, so client code
// imports the backends it wants considered for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// For returns the registered driver with the given name, or nil.
func For(name string) Driver {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == name {
			return drivers[i]
		}
	}
	return nil
}

// Register registers a Driver.
// Backend implementations are expected to call Register exactly
// once, from an init function. If a driver with the same name has
// already been registered, it is replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			Logger().Warn("driver replaced", "name", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	Logger().Debug("driver registered", "name", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)
