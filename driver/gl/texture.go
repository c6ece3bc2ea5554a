// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"fmt"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// texture is the native record behind a handle.Texture.
// A surface is a renderbuffer: renderable but never sampled.
type texture struct {
	// surface distinguishes renderbuffer names from texture
	// names.
	surface bool
	name    uint32
	target  Enum
}

// texTarget converts a driver.TexKind to a GL texture target.
func texTarget(kind driver.TexKind) Enum {
	switch kind {
	case driver.Tex1D:
		return TEXTURE_1D
	case driver.Tex1DArray:
		return TEXTURE_1D_ARRAY
	case driver.Tex2D:
		return TEXTURE_2D
	case driver.Tex2DArray:
		return TEXTURE_2D_ARRAY
	case driver.TexCube:
		return TEXTURE_CUBE_MAP
	case driver.Tex3D:
		return TEXTURE_3D
	case driver.Tex2DMS:
		return TEXTURE_2D_MULTISAMPLE
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// texFmt is a resolved texel format triple.
type texFmt struct {
	internal Enum
	format   Enum
	xtype    Enum
}

// texFormat resolves a channel type hint against the bind flags.
// Depth/stencil binding overrides the hint; ChanRaw resolves to
// the plain 8-bit unsigned normalized default.
func texFormat(hint driver.ChannelType, bind driver.Bind) texFmt {
	if bind&driver.BindDepthStencil != 0 {
		return texFmt{DEPTH24_STENCIL8, DEPTH_STENCIL, UNSIGNED_INT_24_8}
	}
	switch hint {
	case driver.ChanInt:
		return texFmt{RGBA8I, RGBA_INTEGER, BYTE}
	case driver.ChanUint:
		return texFmt{RGBA8UI, RGBA_INTEGER, UNSIGNED_BYTE}
	case driver.ChanInorm:
		return texFmt{RGBA8_SNORM, RGBA, BYTE}
	case driver.ChanFloat:
		return texFmt{RGBA32F, RGBA, FLOAT}
	case driver.ChanSrgb:
		return texFmt{SRGB8_ALPHA8, RGBA, UNSIGNED_BYTE}
	}
	return texFmt{RGBA8, RGBA, UNSIGNED_BYTE}
}

// CreateTexture creates a texture or renderable surface.
// A descriptor that is never sampled nor written through an
// unordered view, and has no initial data, gets the cheaper
// surface representation when its kind allows it.
func (f *Factory) CreateTexture(desc driver.TexDesc, hint driver.ChannelType, data [][]byte) (handle.Texture, error) {
	f.begin()
	if desc.Levels < 1 {
		return handle.Texture{}, &driver.SizeError{Dim: 0}
	}
	m := f.dev.caps.MaxTextureSize
	for _, dim := range [3]int{desc.Width, desc.Height, desc.Depth} {
		if dim > m {
			return handle.Texture{}, &driver.SizeError{Dim: dim}
		}
	}

	fm := texFormat(hint, desc.Bind)
	sampled := desc.Bind&(driver.BindShaderResource|driver.BindUnorderedAccess) != 0 || data != nil
	surface := !sampled && (desc.Kind == driver.Tex2D || desc.Kind == driver.Tex2DMS)

	var t texture
	if surface {
		t = f.makeSurface(&desc, fm)
	} else if f.dev.caps.ImmutableStorage {
		t = f.makeWithStorage(&desc, fm, data)
	} else {
		t = f.makeWithoutStorage(&desc, fm, data)
	}
	if e := f.dev.fns.GetError(); e != NO_ERROR {
		if t.surface {
			f.dev.fns.DeleteRenderbuffer(t.name)
		} else {
			f.dev.fns.DeleteTexture(t.name)
		}
		return handle.Texture{}, fmt.Errorf("gl: texture allocation failed (%#04x)", uint32(e))
	}
	driver.Logger().Debug("gl: created texture", "name", t.name, "surface", t.surface)
	return f.dev.reg.RegisterTexture(t, desc), nil
}

// makeSurface allocates a renderbuffer.
func (f *Factory) makeSurface(desc *driver.TexDesc, fm texFmt) texture {
	fns := f.dev.fns
	name := fns.GenRenderbuffer()
	fns.BindRenderbuffer(RENDERBUFFER, name)
	if desc.Kind == driver.Tex2DMS {
		fns.RenderbufferStorageMultisample(RENDERBUFFER, desc.Samples, fm.internal, desc.Width, desc.Height)
	} else {
		fns.RenderbufferStorage(RENDERBUFFER, fm.internal, desc.Width, desc.Height)
	}
	return texture{surface: true, name: name, target: RENDERBUFFER}
}

// makeWithStorage allocates a texture with immutable storage and
// uploads any initial data into it.
func (f *Factory) makeWithStorage(desc *driver.TexDesc, fm texFmt, data [][]byte) texture {
	fns := f.dev.fns
	target := texTarget(desc.Kind)
	name := fns.GenTexture()
	fns.BindTexture(target, name)
	switch desc.Kind {
	case driver.Tex1D:
		fns.TexStorage1D(target, desc.Levels, fm.internal, desc.Width)
	case driver.Tex1DArray:
		fns.TexStorage2D(target, desc.Levels, fm.internal, desc.Width, desc.Layers)
	case driver.Tex2D, driver.TexCube:
		fns.TexStorage2D(target, desc.Levels, fm.internal, desc.Width, desc.Height)
	case driver.Tex2DArray:
		fns.TexStorage3D(target, desc.Levels, fm.internal, desc.Width, desc.Height, desc.Layers)
	case driver.Tex3D:
		fns.TexStorage3D(target, desc.Levels, fm.internal, desc.Width, desc.Height, desc.Depth)
	case driver.Tex2DMS:
		fns.TexImage2DMultisample(target, desc.Samples, fm.internal, desc.Width, desc.Height)
	}
	t := texture{name: name, target: target}
	if data != nil {
		f.uploadLevels(&t, desc, fm, data, true)
	}
	return t
}

// makeWithoutStorage allocates a texture one mutable level image
// at a time, with initial data folded into the allocation.
func (f *Factory) makeWithoutStorage(desc *driver.TexDesc, fm texFmt, data [][]byte) texture {
	fns := f.dev.fns
	target := texTarget(desc.Kind)
	name := fns.GenTexture()
	fns.BindTexture(target, name)
	t := texture{name: name, target: target}
	if desc.Kind == driver.Tex2DMS {
		fns.TexImage2DMultisample(target, desc.Samples, fm.internal, desc.Width, desc.Height)
		return t
	}
	f.uploadLevels(&t, desc, fm, data, false)
	return t
}

// uploadLevels walks every mip level (and cube face) of the
// texture. With sub set it updates pre-allocated storage; unset
// it defines each level image, with nil data when data does not
// cover the level.
func (f *Factory) uploadLevels(t *texture, desc *driver.TexDesc, fm texFmt, data [][]byte, sub bool) {
	fns := f.dev.fns
	faces := desc.Faces()
	for level := 0; level < desc.Levels; level++ {
		w, h, d := desc.LevelDims(level)
		for face := 0; face < faces; face++ {
			var bytes []byte
			if i := level*faces + face; i < len(data) {
				bytes = data[i]
			} else if sub {
				continue
			}
			target := t.target
			if desc.Kind == driver.TexCube {
				target = TEXTURE_CUBE_MAP_POSITIVE_X + Enum(face)
			}
			switch desc.Kind {
			case driver.Tex1D:
				if sub {
					fns.TexSubImage1D(target, level, 0, w, fm.format, fm.xtype, bytes)
				} else {
					fns.TexImage1D(target, level, fm.internal, w, fm.format, fm.xtype, bytes)
				}
			case driver.Tex1DArray:
				if sub {
					fns.TexSubImage2D(target, level, 0, 0, w, desc.Layers, fm.format, fm.xtype, bytes)
				} else {
					fns.TexImage2D(target, level, fm.internal, w, desc.Layers, fm.format, fm.xtype, bytes)
				}
			case driver.Tex2D, driver.TexCube:
				if sub {
					fns.TexSubImage2D(target, level, 0, 0, w, h, fm.format, fm.xtype, bytes)
				} else {
					fns.TexImage2D(target, level, fm.internal, w, h, fm.format, fm.xtype, bytes)
				}
			case driver.Tex2DArray:
				if sub {
					fns.TexSubImage3D(target, level, 0, 0, 0, w, h, desc.Layers, fm.format, fm.xtype, bytes)
				} else {
					fns.TexImage3D(target, level, fm.internal, w, h, desc.Layers, fm.format, fm.xtype, bytes)
				}
			case driver.Tex3D:
				if sub {
					fns.TexSubImage3D(target, level, 0, 0, 0, w, h, d, fm.format, fm.xtype, bytes)
				} else {
					fns.TexImage3D(target, level, fm.internal, w, h, d, fm.format, fm.xtype, bytes)
				}
			}
		}
	}
}
