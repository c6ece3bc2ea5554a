// Copyright 2025 The go-gfx Authors. All rights reserved.

package driver

import (
	"fmt"
)

// ChannelType is a hint describing how texel channels are to be
// interpreted.
type ChannelType int

// Channel types.
// ChanRaw is the zero value and stands for "unspecified"; backends
// resolve it to an untyped default whose exact interpretation is
// implementation-defined. Callers that care should pass an
// explicit type.
const (
	ChanRaw ChannelType = iota
	ChanInt
	ChanUint
	ChanInorm
	ChanUnorm
	ChanFloat
	ChanSrgb
)

// TexKind is the dimensionality of a texture.
type TexKind int

// Texture kinds.
const (
	Tex1D TexKind = iota
	Tex1DArray
	Tex2D
	Tex2DArray
	TexCube
	Tex3D
	Tex2DMS
)

// TexDesc is a texture descriptor.
type TexDesc struct {
	Kind TexKind
	// Width, Height and Depth are the level-0 dimensions.
	// Height is ignored for 1D kinds and Depth for all but 3D.
	Width, Height, Depth int
	// Layers is the array layer count of array kinds.
	Layers int
	// Levels is the mip level count. It must be at least 1.
	Levels int
	// Samples is the per-pixel sample count of Tex2DMS.
	Samples int
	Bind    Bind
}

// Faces returns the number of cube faces the descriptor implies
// per mip level: 6 for cube kinds, 1 otherwise.
func (d *TexDesc) Faces() int {
	if d.Kind == TexCube {
		return 6
	}
	return 1
}

// LevelDims returns the dimensions of a given mip level.
func (d *TexDesc) LevelDims(level int) (w, h, depth int) {
	w = max(d.Width>>level, 1)
	h = max(d.Height>>level, 1)
	depth = max(d.Depth>>level, 1)
	return
}

// Layered returns whether the descriptor's kind supports array
// layer addressing.
func (d *TexDesc) Layered() bool {
	switch d.Kind {
	case Tex1DArray, Tex2DArray, TexCube:
		return true
	}
	return false
}

// NoLayer requests whole-level targeting when deriving a render
// target or depth/stencil view.
const NoLayer = -1

// SizeError means that a texture descriptor's size is invalid:
// either the mip level count is zero (Dim 0) or a spatial
// dimension exceeds the device's maximum (Dim holds the
// offending value).
type SizeError struct {
	Dim int
}

func (e *SizeError) Error() string {
	if e.Dim == 0 {
		return "driver: texture must have at least one mip level"
	}
	return fmt.Sprintf("driver: texture dimension %d exceeds device maximum", e.Dim)
}
