// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"errors"
	"fmt"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// roleTarget converts a driver.BufferRole to the GL binding
// point buffers of that role are bound to.
func roleTarget(role driver.BufferRole) Enum {
	switch role {
	case driver.RoleVertex:
		return ARRAY_BUFFER
	case driver.RoleIndex:
		return ELEMENT_ARRAY_BUFFER
	case driver.RoleUniform:
		return UNIFORM_BUFFER
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// usageHint converts a driver.BufferUsage to the mutable storage
// usage hint.
func usageHint(usage driver.BufferUsage) Enum {
	switch usage {
	case driver.UsageGPUOnly, driver.UsageConst:
		return STATIC_DRAW
	case driver.UsageDynamic:
		return DYNAMIC_DRAW
	case driver.UsageCPUOnly:
		return STREAM_DRAW
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// storageFlags converts a driver.BufferUsage to the immutable
// storage flags. GPU-only buffers request no host access at all;
// every other usage keeps both mapping directions open, since
// immutable storage access cannot be widened after allocation.
func storageFlags(usage driver.BufferUsage) Enum {
	if usage == driver.UsageGPUOnly {
		return 0
	}
	return MAP_READ_BIT | MAP_WRITE_BIT | DYNAMIC_STORAGE_BIT
}

// CreateBuffer creates a buffer with undefined contents.
func (f *Factory) CreateBuffer(info driver.BufferInfo) (handle.Buffer, error) {
	f.begin()
	if info.Role == driver.RoleUniform && !f.dev.caps.ConstantBuffer {
		return handle.Buffer{}, fmt.Errorf("%w: constant buffers", driver.ErrUnsupported)
	}
	name := f.dev.fns.GenBuffer()
	if err := f.initBuffer(name, &info); err != nil {
		return handle.Buffer{}, err
	}
	driver.Logger().Debug("gl: created buffer", "name", name, "role", info.Role.String(), "size", info.Size)
	return f.dev.reg.RegisterBuffer(name, info), nil
}

// CreateBufferInit creates a Const-usage buffer holding data.
func (f *Factory) CreateBufferInit(data []byte, stride int, role driver.BufferRole, bind driver.Bind) (handle.Buffer, error) {
	f.begin()
	if role == driver.RoleUniform && !f.dev.caps.ConstantBuffer {
		return handle.Buffer{}, fmt.Errorf("%w: constant buffers", driver.ErrUnsupported)
	}
	info := driver.BufferInfo{
		Role:   role,
		Usage:  driver.UsageConst,
		Bind:   bind,
		Size:   len(data),
		Stride: stride,
	}
	name := f.dev.fns.GenBuffer()
	if err := f.initBuffer(name, &info); err != nil {
		return handle.Buffer{}, err
	}
	f.updateSubBuffer(name, data, 0, role)
	driver.Logger().Debug("gl: created buffer", "name", name, "role", role.String(), "size", info.Size)
	return f.dev.reg.RegisterBuffer(name, info), nil
}

// initBuffer allocates the buffer's storage. Contents are left
// undefined by both paths.
func (f *Factory) initBuffer(name uint32, info *driver.BufferInfo) error {
	fns := f.dev.fns
	target := roleTarget(info.Role)
	fns.BindBuffer(target, name)
	if f.dev.caps.BufferStorage {
		fns.BufferStorage(target, info.Size, nil, storageFlags(info.Usage))
	} else {
		fns.BufferData(target, info.Size, nil, usageHint(info.Usage))
	}
	if e := fns.GetError(); e != NO_ERROR {
		fns.DeleteBuffer(name)
		return fmt.Errorf("gl: buffer allocation failed (%#04x)", uint32(e))
	}
	return nil
}

// updateSubBuffer writes data into a sub-range of the buffer's
// storage through the role-derived binding point.
func (f *Factory) updateSubBuffer(name uint32, data []byte, offset int, role driver.BufferRole) {
	target := roleTarget(role)
	f.dev.fns.BindBuffer(target, name)
	f.dev.fns.BufferSubData(target, offset, data)
}

// mapping implements driver.Mapping.
// It remembers the binding point the storage was mapped under,
// which is needed to unmap correctly.
type mapping struct {
	bytes  []byte
	elems  int
	target Enum
}

// Bytes returns the mapped range.
func (m *mapping) Bytes() []byte { return m.bytes }

// Elems returns the declared element count of the source buffer.
func (m *mapping) Elems() int { return m.elems }

// MapBuffer maps the buffer's whole native storage.
func (f *Factory) MapBuffer(b handle.Buffer, access driver.MapAccess) (driver.Mapping, error) {
	f.begin()
	name, info, err := f.bufferName(b)
	if err != nil {
		return nil, err
	}
	var acc Enum
	switch access {
	case driver.MapRead:
		acc = READ_ONLY
	case driver.MapWrite:
		acc = WRITE_ONLY
	case driver.MapRW:
		acc = READ_WRITE
	}
	target := roleTarget(info.Role)
	f.dev.fns.BindBuffer(target, name)
	p := f.dev.fns.MapBuffer(target, acc)
	if p == nil {
		return nil, errors.New("gl: buffer mapping failed")
	}
	return &mapping{
		bytes:  p,
		elems:  info.Elems(),
		target: target,
	}, nil
}

// Unmap releases a mapping on the binding point it was mapped
// under. The mapped bytes must not be accessed afterwards.
func (f *Factory) Unmap(m driver.Mapping) error {
	mp, ok := m.(*mapping)
	if !ok || mp.bytes == nil {
		return errors.New("gl: not a live mapping")
	}
	ok = f.dev.fns.UnmapBuffer(mp.target)
	mp.bytes = nil
	if !ok {
		return errors.New("gl: buffer storage was corrupted while mapped")
	}
	return nil
}
