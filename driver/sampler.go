// Copyright 2025 The go-gfx Authors. All rights reserved.

package driver

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FNearest Filter = iota
	FLinear
	// FNoMipmap forces mip level 0 to be used.
	// It is only valid as the mip filter of a sampler.
	FNoMipmap
)

// WrapMode is the type of sampler address modes.
type WrapMode int

// Wrap modes.
const (
	WRepeat WrapMode = iota
	WMirror
	WClamp
	WBorder
)

// Sampling describes sampler state.
// The state is retained verbatim on the handle even when the
// device cannot create a native sampler object, so that a binding
// layer may apply it by other means.
type Sampling struct {
	Min    Filter
	Mag    Filter
	Mipmap Filter
	WrapU  WrapMode
	WrapV  WrapMode
	WrapW  WrapMode
	// Cmp enables depth comparison sampling when non-nil.
	Cmp     *CmpFunc
	LODBias float32
	MinLOD  float32
	MaxLOD  float32
	// Border is the RGBA border color used with WBorder.
	Border [4]float32
}
