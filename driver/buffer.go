// Copyright 2025 The go-gfx Authors. All rights reserved.

package driver

import (
	"unsafe"
)

// BufferRole is the role a buffer plays in draw calls.
type BufferRole int

// Buffer roles.
const (
	RoleVertex BufferRole = iota
	RoleIndex
	RoleUniform
)

// String returns the role's name.
func (r BufferRole) String() string {
	switch r {
	case RoleVertex:
		return "vertex"
	case RoleIndex:
		return "index"
	case RoleUniform:
		return "uniform"
	}
	return "unknown"
}

// BufferUsage is the expected access pattern of a buffer.
// It drives the storage allocation strategy.
type BufferUsage int

// Buffer usage classes.
const (
	// UsageGPUOnly means the CPU never touches the contents.
	UsageGPUOnly BufferUsage = iota
	// UsageConst means contents are written once and then only
	// read by the GPU.
	UsageConst
	// UsageDynamic means contents are updated frequently.
	UsageDynamic
	// UsageCPUOnly means the buffer backs streaming transfers.
	UsageCPUOnly
)

// Bind is a mask of pipeline binding points a resource may be
// attached to.
type Bind int

// Bind flags.
const (
	BindShaderResource Bind = 1 << iota
	BindRenderTarget
	BindDepthStencil
	BindUnorderedAccess
)

// BufferInfo is a buffer descriptor.
type BufferInfo struct {
	Role  BufferRole
	Usage BufferUsage
	Bind  Bind
	// Size is the storage size in bytes.
	Size int
	// Stride is the element stride in bytes. A zero stride
	// describes an unstructured byte buffer.
	Stride int
}

// Elems returns the declared element count of the buffer.
func (i *BufferInfo) Elems() int {
	if i.Stride <= 0 {
		return i.Size
	}
	return i.Size / i.Stride
}

// MapAccess is the host access mode of a buffer mapping.
type MapAccess int

// Map access modes.
const (
	MapRead MapAccess = iota
	MapWrite
	MapRW
)

// Mapping exposes a buffer's native storage mapped into host
// memory. It is only valid between the MapBuffer call that
// produced it and the matching Unmap; the backend remembers the
// native binding point the storage was mapped under so that it
// can unmap correctly.
type Mapping interface {
	// Bytes returns the mapped range.
	// The slice must not be retained across Unmap.
	Bytes() []byte

	// Elems returns the declared element count of the source
	// buffer (size over stride).
	Elems() int
}

// Slice returns the mapping as a typed slice of exactly the
// source buffer's declared element count, never its byte length.
// T's size should equal the declared stride; if T is larger than
// the mapped range allows, the view is truncated to stay within
// the mapping.
// The returned slice aliases the mapped storage and shares the
// mapping's validity window.
func Slice[T any](m Mapping) []T {
	b := m.Bytes()
	var t T
	sz := int(unsafe.Sizeof(t))
	if len(b) == 0 || sz == 0 {
		return nil
	}
	n := m.Elems()
	if max := len(b) / sz; n > max {
		n = max
	}
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
