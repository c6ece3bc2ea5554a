// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// Factory implements driver.Factory.
// It is a lightweight view of the shared Device plus a scratch
// table used to resolve input handles to native names during one
// creation call. The scratch table is reset at the start of every
// public operation; entries never survive across operations.
// A Factory must not be shared between goroutines.
type Factory struct {
	dev *Device
	// frame is the per-operation handle resolution scratch.
	frame map[handle.Ref]uint32
}

var _ driver.Factory = (*Factory)(nil)

// Clone returns a new factory onto the same device.
func (f *Factory) Clone() *Factory {
	return &Factory{
		dev:   f.dev,
		frame: make(map[handle.Ref]uint32),
	}
}

// begin starts a public operation.
// Stale entries from a previous operation must never leak into
// a later one.
func (f *Factory) begin() {
	clear(f.frame)
}

// bufferName resolves a buffer handle to its native name and
// creation descriptor.
func (f *Factory) bufferName(h handle.Buffer) (uint32, driver.BufferInfo, error) {
	obj, info, err := f.dev.reg.Resolve(h.Ref())
	if err != nil {
		return 0, driver.BufferInfo{}, err
	}
	name := obj.(uint32)
	f.frame[h.Ref()] = name
	return name, info.(driver.BufferInfo), nil
}

// shaderName resolves a shader handle to its native name.
func (f *Factory) shaderName(h handle.Shader) (uint32, error) {
	if name, ok := f.frame[h.Ref()]; ok {
		return name, nil
	}
	obj, _, err := f.dev.reg.Resolve(h.Ref())
	if err != nil {
		return 0, err
	}
	name := obj.(uint32)
	f.frame[h.Ref()] = name
	return name, nil
}

// programName resolves a program handle to its native name.
func (f *Factory) programName(h handle.Program) (uint32, error) {
	if name, ok := f.frame[h.Ref()]; ok {
		return name, nil
	}
	obj, _, err := f.dev.reg.Resolve(h.Ref())
	if err != nil {
		return 0, err
	}
	name := obj.(uint32)
	f.frame[h.Ref()] = name
	return name, nil
}

// texObject resolves a texture handle to its native record and
// creation descriptor.
func (f *Factory) texObject(h handle.Texture) (texture, driver.TexDesc, error) {
	obj, info, err := f.dev.reg.Resolve(h.Ref())
	if err != nil {
		return texture{}, driver.TexDesc{}, err
	}
	t := obj.(texture)
	f.frame[h.Ref()] = t.name
	return t, info.(driver.TexDesc), nil
}
