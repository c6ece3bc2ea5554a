// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"errors"
	"fmt"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

const driverName = "gl"

// Driver implements driver.Driver.
// Open requires a current GL context on the calling thread (see
// package wsi); the same Device is returned until Close is called.
type Driver struct {
	dev *Device
}

func init() {
	driver.Register(&Driver{})
}

// Name returns the name of the driver.
func (d *Driver) Name() string { return driverName }

// Open initializes the driver over the real GL bindings.
func (d *Driver) Open() (driver.Device, error) {
	if d.dev != nil {
		return d.dev, nil
	}
	fns, err := loadFuncs()
	if err != nil {
		return nil, err
	}
	dev, err := Open(fns)
	if err != nil {
		return nil, err
	}
	d.dev = dev
	return dev, nil
}

// Close deinitializes the driver.
func (d *Driver) Close() { d.dev = nil }

// Device is the shared device context: the native call surface
// plus the capability flags queried at open time and the handle
// registry owning every created object.
// It implements driver.Device.
type Device struct {
	fns  Funcs
	caps driver.Capabilities
	reg  *handle.Registry
}

// Open creates a device over an arbitrary call surface.
// It queries the context's version, limits and extensions to
// derive the capability flags that gate every creation path.
func Open(fns Funcs) (*Device, error) {
	caps, err := queryCaps(fns)
	if err != nil {
		return nil, err
	}
	driver.Logger().Info("gl: device opened",
		"version", fmt.Sprintf("%d.%d", caps.Version[0], caps.Version[1]),
		"maxTextureSize", caps.MaxTextureSize,
		"bufferStorage", caps.BufferStorage,
		"immutableStorage", caps.ImmutableStorage,
		"samplerObjects", caps.SamplerObjects,
		"constantBuffer", caps.ConstantBuffer)
	return &Device{
		fns:  fns,
		caps: caps,
		reg:  handle.NewRegistry(),
	}, nil
}

// Caps returns the capability flags.
func (d *Device) Caps() driver.Capabilities { return d.caps }

// Handles returns the registry owning the device's objects.
func (d *Device) Handles() *handle.Registry { return d.reg }

// NewFactory derives a new resource factory.
func (d *Device) NewFactory() driver.Factory {
	return &Factory{
		dev:   d,
		frame: make(map[handle.Ref]uint32),
	}
}

// queryCaps derives the capability flags from the context.
func queryCaps(fns Funcs) (driver.Capabilities, error) {
	major := fns.GetInteger(MAJOR_VERSION)
	minor := fns.GetInteger(MINOR_VERSION)
	if major < 3 {
		return driver.Capabilities{}, errors.New("gl: version 3.0 or greater required")
	}
	exts := make(map[string]bool)
	for i, n := 0, fns.GetInteger(NUM_EXTENSIONS); i < n; i++ {
		exts[fns.GetStringi(EXTENSIONS, i)] = true
	}
	atLeast := func(maj, min int) bool {
		return major > maj || major == maj && minor >= min
	}
	return driver.Capabilities{
		Version:          [2]int{major, minor},
		MaxTextureSize:   fns.GetInteger(MAX_TEXTURE_SIZE),
		ConstantBuffer:   atLeast(3, 1) || exts["GL_ARB_uniform_buffer_object"],
		BufferStorage:    atLeast(4, 4) || exts["GL_ARB_buffer_storage"],
		ImmutableStorage: atLeast(4, 2) || exts["GL_ARB_texture_storage"],
		SamplerObjects:   atLeast(3, 3) || exts["GL_ARB_sampler_objects"],
	}, nil
}
