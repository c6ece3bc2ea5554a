// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"github.com/chewxy/math32"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// magFilter converts a magnification filter.
func magFilter(mag driver.Filter) Enum {
	if mag == driver.FLinear {
		return LINEAR
	}
	return NEAREST
}

// minFilter converts the minification and mip filter pair to the
// combined GL minification filter.
func minFilter(min, mip driver.Filter) Enum {
	switch mip {
	case driver.FNoMipmap:
		return magFilter(min)
	case driver.FLinear:
		if min == driver.FLinear {
			return LINEAR_MIPMAP_LINEAR
		}
		return NEAREST_MIPMAP_LINEAR
	}
	if min == driver.FLinear {
		return LINEAR_MIPMAP_NEAREST
	}
	return NEAREST_MIPMAP_NEAREST
}

// convWrap converts a driver.WrapMode to a GL wrap mode.
func convWrap(w driver.WrapMode) Enum {
	switch w {
	case driver.WRepeat:
		return REPEAT
	case driver.WMirror:
		return MIRRORED_REPEAT
	case driver.WClamp:
		return CLAMP_TO_EDGE
	case driver.WBorder:
		return CLAMP_TO_BORDER
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// convCmp converts a driver.CmpFunc to a GL comparison function.
func convCmp(c driver.CmpFunc) Enum {
	switch c {
	case driver.CNever:
		return NEVER
	case driver.CLess:
		return LESS
	case driver.CEqual:
		return EQUAL
	case driver.CLessEqual:
		return LEQUAL
	case driver.CGreater:
		return GREATER
	case driver.CNotEqual:
		return NOTEQUAL
	case driver.CGreaterEqual:
		return GEQUAL
	case driver.CAlways:
		return ALWAYS
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// lodRange is the clamp applied to requested LOD bounds.
// GL guarantees at least [-1000, 1000].
const lodRange = 1000

// CreateSampler creates a sampler. It never fails: on devices
// without sampler objects the handle is backed by name 0 and the
// requested state is retained for a binding layer to apply as
// texture parameters instead.
func (f *Factory) CreateSampler(info *driver.Sampling) handle.Sampler {
	f.begin()
	state := *info
	if !f.dev.caps.SamplerObjects {
		return f.dev.reg.RegisterSampler(uint32(0), state)
	}
	fns := f.dev.fns
	name := fns.GenSampler()
	fns.SamplerParameteri(name, TEXTURE_MIN_FILTER, int(minFilter(state.Min, state.Mipmap)))
	fns.SamplerParameteri(name, TEXTURE_MAG_FILTER, int(magFilter(state.Mag)))
	fns.SamplerParameteri(name, TEXTURE_WRAP_S, int(convWrap(state.WrapU)))
	fns.SamplerParameteri(name, TEXTURE_WRAP_T, int(convWrap(state.WrapV)))
	fns.SamplerParameteri(name, TEXTURE_WRAP_R, int(convWrap(state.WrapW)))
	fns.SamplerParameterf(name, TEXTURE_LOD_BIAS, state.LODBias)
	fns.SamplerParameterf(name, TEXTURE_MIN_LOD, math32.Max(state.MinLOD, -lodRange))
	fns.SamplerParameterf(name, TEXTURE_MAX_LOD, math32.Min(state.MaxLOD, lodRange))
	if state.Cmp != nil {
		fns.SamplerParameteri(name, TEXTURE_COMPARE_MODE, int(COMPARE_REF_TO_TEXTURE))
		fns.SamplerParameteri(name, TEXTURE_COMPARE_FUNC, int(convCmp(*state.Cmp)))
	} else {
		fns.SamplerParameteri(name, TEXTURE_COMPARE_MODE, int(NONE))
	}
	if state.WrapU == driver.WBorder || state.WrapV == driver.WBorder || state.WrapW == driver.WBorder {
		border := state.Border
		fns.SamplerParameterfv(name, TEXTURE_BORDER_COLOR, &border)
	}
	driver.Logger().Debug("gl: created sampler", "name", name)
	return f.dev.reg.RegisterSampler(name, state)
}
